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

// searchResponse mirrors the openFDA search envelope. The meta total is a
// pointer so its absence can be told apart from a zero.
type searchResponse struct {
	Meta struct {
		Results struct {
			Total *int `json:"total"`
		} `json:"results"`
	} `json:"meta"`
	Results []deviceResult `json:"results"`
}

// deviceResult carries the subset of raw result fields the tool extracts.
// The API returns many more; unknown fields are dropped during decoding.
type deviceResult struct {
	KNumber             string `json:"k_number"`
	DeviceName          string `json:"device_name"`
	Applicant           string `json:"applicant"`
	IndicationsForUse   string `json:"indications_for_use"`
	SummaryOfTechnology string `json:"summary_of_technology"`
	DeviceDescription   string `json:"device_description"`
}

// extractRecord normalizes one raw API result into a DeviceRecord. Missing
// fields stay empty strings. The summary falls back to the device
// description when the dedicated summary field is absent. The manufacturer
// is sourced from the applicant field alone.
func extractRecord(result deviceResult) DeviceRecord {
	summary := result.SummaryOfTechnology
	if summary == "" {
		summary = result.DeviceDescription
	}

	return DeviceRecord{
		KNumber:             result.KNumber,
		DeviceName:          result.DeviceName,
		Manufacturer:        result.Applicant,
		IndicationsForUse:   result.IndicationsForUse,
		SummaryOfTechnology: summary,
	}
}
