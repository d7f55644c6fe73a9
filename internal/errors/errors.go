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

// Package errors defines sentinel errors for consistent error handling across
// the application. The CLI prints any error as "Error: <message>" and exits
// with status 1; the sentinels let callers distinguish upstream API failures
// from local ones without inspecting messages.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrAPIFailure is the single recoverable error kind covering every
	// upstream failure: HTTP error statuses, transport failures, and
	// undecodable response bodies all unwrap to it.
	ErrAPIFailure = errors.New("fda api request failed")
)
