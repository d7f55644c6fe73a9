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

// Package output provides utilities for writing device records as NDJSON
// (Newline Delimited JSON) or as a single pretty-printed JSON array.
//
// The NDJSON Writer streams each record as one compact JSON line the moment
// it is written, which keeps memory flat for large result sets. The
// ArrayWriter buffers records and emits one two-space-indented JSON array
// when closed. Both leave non-ASCII and HTML characters unescaped.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	defer w.Close()
//
//	for _, record := range records {
//	    if err := w.Write(record); err != nil {
//	        log.Printf("Failed to write record: %v", err)
//	    }
//	}
package output
