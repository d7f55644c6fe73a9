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

package fda

import (
	"fmt"

	ragenterrors "github.com/ragenthq/ragent/internal/errors"
)

// StatusError reports an HTTP error response (status >= 400) from the
// openFDA API. The raw response body is carried so callers can surface the
// API's own diagnostic message. It unwraps to errors.ErrAPIFailure.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("FDA API request failed (%d): %s", e.StatusCode, e.Body)
}

// Unwrap makes the error match ErrAPIFailure under errors.Is.
func (e *StatusError) Unwrap() error { return ragenterrors.ErrAPIFailure }

// TransportError reports a failure to reach the API or to read its
// response: DNS failures, timeouts, refused connections, and undecodable
// bodies. It unwraps to errors.ErrAPIFailure.
type TransportError struct {
	Reason error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("FDA API connection failed: %v", e.Reason)
}

// Unwrap makes the error match ErrAPIFailure under errors.Is.
func (e *TransportError) Unwrap() error { return ragenterrors.ErrAPIFailure }
