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

import "context"

// Client defines the interface for querying the 510(k) database.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchDevices retrieves one page of 510(k) submissions matching the
	// given product code. Pagination is offset-based through opts.Skip;
	// the page size can be configured via opts.PageSize.
	FetchDevices(ctx context.Context, productCode string, opts FetchOptions) (*DevicePage, error)
}
