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

package listing

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 📁 Kind is the closed set of entry kinds
type Kind string

const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// 📍 Location identifies a remote directory
type Location struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
	Path   string `json:"path"`
}

// 📄 Entry is one child of a Location
type Entry struct {
	Name        string  `json:"name"`
	Kind        Kind    `json:"type"`
	Path        string  `json:"path"`
	DownloadURL *string `json:"download_url"`
	Size        *int    `json:"size"`
}

// 📚 Listing is the normalized contents of one Location
type Listing struct {
	Location
	Items []Entry `json:"items"`
}

// 🧹 CleanPath strips boundary slashes and drops empty segments
func CleanPath(p string) string {
	return strings.Join(Segments(p), "/")
}

// ✂️ Segments splits a path on "/" discarding empty segments
func Segments(p string) []string {
	parts := strings.Split(p, "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// ⬆️ Parent returns p with its last segment removed. The parent of root is root.
func Parent(p string) string {
	segs := Segments(p)
	if len(segs) == 0 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], "/")
}

// WithDefaults fills empty owner, repo and branch from d and cleans the path.
func (l Location) WithDefaults(d Location) Location {
	if l.Owner == "" {
		l.Owner = d.Owner
	}
	if l.Repo == "" {
		l.Repo = d.Repo
	}
	if l.Branch == "" {
		l.Branch = d.Branch
	}
	l.Path = CleanPath(l.Path)
	return l
}

// 📝 String returns owner/repo@branch:path
func (l Location) String() string {
	return fmt.Sprintf("%s/%s@%s:/%s", l.Owner, l.Repo, l.Branch, l.Path)
}

// 🔗 RawURL builds the raw-content URL for a file path at this location's branch
func (l Location) RawURL(filePath string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "raw.githubusercontent.com",
		Path:   "/" + strings.Join([]string{l.Owner, l.Repo, l.Branch, CleanPath(filePath)}, "/"),
	}
	return u.String()
}

// 🔗 ResolveURL returns the entry's download URL, or the raw-content URL when upstream omitted it
func (l *Listing) ResolveURL(e Entry) string {
	if e.DownloadURL != nil && *e.DownloadURL != "" {
		return *e.DownloadURL
	}
	return l.RawURL(e.Path)
}

// 🔢 Sort orders entries directories first, then by locale-aware name.
// Names that collate equal fall back to byte order so the result is deterministic.
func Sort(entries []Entry) {
	c := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Kind != b.Kind {
			return a.Kind == KindDir
		}
		if cmp := c.CompareString(a.Name, b.Name); cmp != 0 {
			return cmp < 0
		}
		return a.Name < b.Name
	})
}

// IsSorted reports whether entries satisfy the ordering Sort produces.
func IsSorted(entries []Entry) bool {
	c := collate.New(language.Und)
	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		if a.Kind != b.Kind {
			if a.Kind == KindFile {
				return false
			}
			continue
		}
		if c.CompareString(a.Name, b.Name) > 0 {
			return false
		}
	}
	return true
}
