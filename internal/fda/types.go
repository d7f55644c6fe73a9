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

// DeviceRecord is the normalized 510(k) submission record emitted by the
// tool. Every field is a plain string and defaults to empty when the source
// payload omits it. Records are immutable once constructed and carry no
// relationships to each other.
type DeviceRecord struct {
	KNumber             string `json:"k_number"`
	DeviceName          string `json:"device_name"`
	Manufacturer        string `json:"manufacturer"`
	IndicationsForUse   string `json:"indications_for_use"`
	SummaryOfTechnology string `json:"summary_of_technology"`
}

// DevicePage represents one page of search results along with the
// server-reported total, which the Pager uses as its termination hint.
type DevicePage struct {
	Records []DeviceRecord

	// Total is the total number of matches reported by the API, or -1 when
	// the response carries no meta total.
	Total int
}

// FetchOptions configures a single page fetch.
type FetchOptions struct {
	// PageSize controls how many records to request per page.
	// Defaults to 100 if not specified. The API caps pages at 100 but the
	// value is passed through unvalidated; exceeding the cap is the
	// server's concern.
	PageSize int

	// Skip is the zero-based offset into the full result set.
	Skip int
}

// DefaultPageSize matches the maximum page size the openFDA API serves.
const DefaultPageSize = 100
