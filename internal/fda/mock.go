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
	"fmt"
)

// MockClient is an in-memory implementation of the Client interface for
// testing. It serves pages out of a fixed record slice, honoring Skip and
// PageSize, and reports the slice length as the meta total.
type MockClient struct {
	// Records is the full result set served across pages.
	Records []DeviceRecord

	// Err, when set, is returned by every call.
	Err error

	// OmitTotal suppresses the meta total so pages report Total = -1.
	OmitTotal bool

	// Track calls for verification
	CallCount int
	LastCode  string
	LastOpts  FetchOptions
}

// NewMockClient creates a mock client serving n generated records.
func NewMockClient(n int) *MockClient {
	return &MockClient{Records: GenerateDeviceRecords(n)}
}

// FetchDevices implements the Client interface.
func (m *MockClient) FetchDevices(ctx context.Context, productCode string, opts FetchOptions) (*DevicePage, error) {
	m.CallCount++
	m.LastCode = productCode
	m.LastOpts = opts

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := opts.Skip
	if start > len(m.Records) {
		start = len(m.Records)
	}
	end := start + pageSize
	if end > len(m.Records) {
		end = len(m.Records)
	}

	page := &DevicePage{
		Records: m.Records[start:end],
		Total:   len(m.Records),
	}
	if m.OmitTotal {
		page.Total = -1
	}

	return page, nil
}

// GenerateDeviceRecords produces n deterministic records for tests.
func GenerateDeviceRecords(n int) []DeviceRecord {
	records := make([]DeviceRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, DeviceRecord{
			KNumber:             fmt.Sprintf("K%06d", i),
			DeviceName:          fmt.Sprintf("Device %d", i),
			Manufacturer:        fmt.Sprintf("Applicant %d", i),
			IndicationsForUse:   fmt.Sprintf("Indication %d", i),
			SummaryOfTechnology: fmt.Sprintf("Summary %d", i),
		})
	}
	return records
}
