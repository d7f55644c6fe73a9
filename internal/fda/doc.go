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

// Package fda provides a client for the openFDA 510(k) device database.
// It wraps the REST search endpoint behind a small interface and handles
// offset-based pagination, field normalization, and error classification.
//
// The package includes:
//   - A Client interface for fetching pages of 510(k) submissions
//   - An HTTP implementation against the public openFDA endpoint
//   - A Pager for draining all pages of a product-code search
//   - A mock client for testing
//   - Typed errors distinguishing HTTP status failures from transport failures
//
// Basic usage:
//
//	client := fda.NewHTTPClient("")
//	pager := fda.NewPager(client, "LZG", fda.FetchOptions{PageSize: 100})
//	for pager.HasMore() {
//	    page, err := pager.Next(ctx)
//	    if err != nil {
//	        // Handle error
//	    }
//	    for _, record := range page.Records {
//	        // Process record
//	    }
//	}
package fda
