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

// Package testutil provides common test helpers for ragent
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
)

// MockServer wraps an httptest.Server preconfigured with openFDA-shaped
// responses.
type MockServer struct {
	*httptest.Server
	requestCount int32
}

// RequestCount returns how many requests the server has handled.
func (s *MockServer) RequestCount() int {
	return int(atomic.LoadInt32(&s.requestCount))
}

// NewDeviceServer creates a mock openFDA endpoint that serves the given raw
// result objects with offset pagination. It honors the limit and skip query
// parameters and reports the full result count as the meta total.
func NewDeviceServer(t *testing.T, results []map[string]string) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requestCount, 1)

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		if limit <= 0 {
			limit = 100
		}

		start := skip
		if start > len(results) {
			start = len(results)
		}
		end := start + limit
		if end > len(results) {
			end = len(results)
		}

		response := map[string]interface{}{
			"meta": map[string]interface{}{
				"results": map[string]interface{}{"total": len(results)},
			},
			"results": results[start:end],
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))

	return mock
}

// NewErrorServer creates a mock server that always returns the specified
// status code and body.
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requestCount, 1)
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))

	return mock
}

// NewMalformedServer creates a mock server that returns 200 with a body that
// is not valid JSON.
func NewMalformedServer(t *testing.T) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requestCount, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))

	return mock
}
