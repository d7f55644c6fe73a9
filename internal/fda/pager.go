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
	"time"
)

// pageDelay is the fixed pause between consecutive page fetches, to avoid
// hammering the public API.
const pageDelay = 100 * time.Millisecond

// Pager is a forward-only cursor over the pages of a product-code search.
// The sequence ends when a page comes back empty or when the cumulative
// offset reaches the server-reported total. A Pager cannot be restarted;
// create a new one to iterate again. Not safe for concurrent use.
//
// Callers that cap the number of records they consume should check the cap
// between pages: once HasMore is no longer polled, no further fetches occur.
type Pager struct {
	client      Client
	productCode string
	opts        FetchOptions
	delay       time.Duration

	skip    int
	fetched int
	done    bool
}

// NewPager creates a Pager over all results for the given product code.
func NewPager(client Client, productCode string, opts FetchOptions) *Pager {
	return &Pager{
		client:      client,
		productCode: productCode,
		opts:        opts,
		delay:       pageDelay,
	}
}

// HasMore reports whether another page may be available. It returns true
// until an empty page has been seen or the server-reported total has been
// reached.
func (p *Pager) HasMore() bool {
	return !p.done
}

// Next fetches the next page of results. The offset advances by the number
// of records actually returned, so a short final page terminates the
// sequence correctly. Consecutive fetches are separated by a fixed pause;
// the pause honors context cancellation. After the sequence ends, Next
// returns an empty page.
func (p *Pager) Next(ctx context.Context) (*DevicePage, error) {
	if p.done {
		return &DevicePage{Total: -1}, nil
	}

	if p.fetched > 0 && p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	opts := p.opts
	opts.Skip = p.skip
	page, err := p.client.FetchDevices(ctx, p.productCode, opts)
	if err != nil {
		return nil, err
	}
	p.fetched++

	if len(page.Records) == 0 {
		p.done = true
		return page, nil
	}

	p.skip += len(page.Records)
	if page.Total >= 0 && p.skip >= page.Total {
		p.done = true
	}

	return page, nil
}
