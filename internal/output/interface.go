// Copyright 2025 RAgent Labs
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

// OutputWriter defines the interface for writing device records.
// This abstraction lets the CLI switch between streaming NDJSON and a
// buffered JSON array without changing its drain loop.
type OutputWriter interface {
	// Write writes a single record to the output. Streaming
	// implementations flush it immediately; buffered implementations hold
	// it until Close.
	Write(record interface{}) error

	// Close flushes any buffered output and releases underlying
	// resources. This should be called when all writing is complete.
	Close() error
}
