// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package navigator

import (
	"net/url"
	"sync"

	"github.com/walteh/ghtree/pkg/listing"
)

// PathParam is the query parameter that carries the navigation path.
const PathParam = "path"

// History receives the navigation path after every path-changing action.
type History interface {
	Push(path string)
}

// 📜 URLHistory keeps an address and the stack of addresses pushed onto it
type URLHistory struct {
	mu      sync.Mutex
	entries []*url.URL
}

// NewURLHistory starts a history at start.
func NewURLHistory(start *url.URL) *URLHistory {
	u := *start
	return &URLHistory{entries: []*url.URL{&u}}
}

// Push adds a new entry for path on top of the current address.
func (h *URLHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, WithPath(h.entries[len(h.entries)-1], path))
}

// Current returns the address of the newest entry.
func (h *URLHistory) Current() *url.URL {
	h.mu.Lock()
	defer h.mu.Unlock()
	u := *h.entries[len(h.entries)-1]
	return &u
}

// Len returns the number of entries, including the starting one.
func (h *URLHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// 🔗 WithPath returns a copy of u with the path parameter set, or removed when
// path is root. Other query parameters are kept.
func WithPath(u *url.URL, path string) *url.URL {
	out := *u
	q := out.Query()
	if p := listing.CleanPath(path); p != "" {
		q.Set(PathParam, p)
	} else {
		q.Del(PathParam)
	}
	out.RawQuery = q.Encode()
	return &out
}

// PathFromURL reads the navigation path from u. A missing parameter is root.
func PathFromURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return listing.CleanPath(u.Query().Get(PathParam))
}
