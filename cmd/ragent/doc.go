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

// Package main implements the ragent command-line interface. The tool
// searches the openFDA 510(k) device database by product code, pages
// through the full result set, and prints normalized records.
//
// The CLI supports:
//   - Pretty JSON array output (default) or streaming NDJSON
//   - An optional cap on the number of records returned
//   - Customizable output destinations (stdout or file)
//   - Endpoint and default overrides via a YAML config file or environment
//
// Usage:
//
//	ragent <product_code> [flags]
//
// Example:
//
//	ragent LZG --limit 50 --format ndjson
//
// Exit codes:
//   - 0: Success
//   - 1: Any error, including upstream API failures
package main
