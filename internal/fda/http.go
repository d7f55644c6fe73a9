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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ragenthq/ragent/internal/logging"
	"github.com/ragenthq/ragent/pkg/version"
)

// DefaultEndpoint is the public openFDA 510(k) search endpoint.
const DefaultEndpoint = "https://api.fda.gov/device/510k.json"

const (
	// requestTimeout bounds a single page fetch. It is fixed and not
	// exposed to the user.
	requestTimeout = 30 * time.Second

	// maxResponseSize caps response bodies to prevent memory issues.
	maxResponseSize = 10 * 1024 * 1024 // 10MB
)

// HTTPClient implements the Client interface against the openFDA REST API.
// It performs one blocking GET per page with a fixed timeout, an identifying
// User-Agent header, and a response size limit. There is no retry; every
// failure is reported as a StatusError or TransportError.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// NewHTTPClient creates a client for the given endpoint. An empty endpoint
// selects the public openFDA URL. The client is configured with:
//   - A fixed 30 second request timeout
//   - A User-Agent header identifying the tool
//   - Response size limiting to prevent memory issues
//   - Connection pooling tuned for sequential page fetches
func NewHTTPClient(endpoint string) *HTTPClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &HTTPClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: &identifyTransport{base: transport},
		},
		log: logging.NewLogger("fda"),
	}
}

// buildQuery assembles the search URL for one page. The product code is
// treated as opaque and percent-encoded as-is; no format validation and no
// local page-size cap.
func buildQuery(endpoint, productCode string, limit, skip int) string {
	params := url.Values{}
	params.Set("search", "product_code:"+productCode)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("skip", strconv.Itoa(skip))
	return endpoint + "?" + params.Encode()
}

// FetchDevices fetches one page of 510(k) submissions for the product code.
// HTTP error statuses become a StatusError carrying the code and raw body;
// connection failures and malformed bodies become a TransportError.
func (c *HTTPClient) FetchDevices(ctx context.Context, productCode string, opts FetchOptions) (*DevicePage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	reqURL := buildQuery(c.endpoint, productCode, pageSize, opts.Skip)
	c.log.Debug().Str("url", reqURL).Int("skip", opts.Skip).Msg("fetching page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Reason: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Reason: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Reason: fmt.Errorf("decoding response: %w", err)}
	}

	page := &DevicePage{
		Records: make([]DeviceRecord, 0, len(payload.Results)),
		Total:   -1,
	}
	if payload.Meta.Results.Total != nil {
		page.Total = *payload.Meta.Results.Total
	}
	for _, result := range payload.Results {
		page.Records = append(page.Records, extractRecord(result))
	}

	c.log.Debug().Int("records", len(page.Records)).Int("total", page.Total).Msg("page fetched")
	return page, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// identifyTransport adds the identifying User-Agent header and safety limits
// to HTTP requests.
type identifyTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *identifyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("User-Agent", fmt.Sprintf("ragent/%s (+https://api.fda.gov)", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}
