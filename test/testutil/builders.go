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

package testutil

import "fmt"

// GenerateDeviceResults produces n raw openFDA result objects with
// deterministic field values. The objects carry device_description but no
// summary_of_technology, exercising the extraction fallback.
func GenerateDeviceResults(n int) []map[string]string {
	results := make([]map[string]string, 0, n)
	for i := 1; i <= n; i++ {
		results = append(results, map[string]string{
			"k_number":            fmt.Sprintf("K%06d", i),
			"device_name":         fmt.Sprintf("Device %d", i),
			"applicant":           fmt.Sprintf("Applicant %d", i),
			"indications_for_use": fmt.Sprintf("Indication %d", i),
			"device_description":  fmt.Sprintf("Description %d", i),
		})
	}
	return results
}
