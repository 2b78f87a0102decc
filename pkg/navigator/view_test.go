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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ghtree/pkg/listing"
)

func strPtr(s string) *string { return &s }

func TestBuildView(t *testing.T) {
	entries := []listing.Entry{
		{Name: "b.png", Kind: listing.KindFile, Path: "img/b.png"},
		{Name: "A", Kind: listing.KindDir, Path: "img/A"},
		{Name: "a.txt", Kind: listing.KindFile, Path: "img/a.txt", DownloadURL: strPtr("https://example.com/a.txt")},
	}
	listing.Sort(entries)

	s := Initial("img")
	s = Reduce(s, Loaded{Seq: s.Seq, Listing: &listing.Listing{Location: at("img"), Items: entries}})

	v := BuildView(s, &url.URL{Path: "/"})

	require.Len(t, v.Rows, 3, "all entries should render")
	assert.Equal(t, "A", v.Rows[0].Name, "directory should render first")
	assert.True(t, v.Rows[0].Dir, "A should be a directory row")
	assert.Equal(t, "/?path=img%2FA", v.Rows[0].Href, "directory should link to its path")
	assert.False(t, v.Rows[0].Image, "directories are never images")

	assert.Equal(t, "a.txt", v.Rows[1].Name, "a.txt should render second")
	assert.Equal(t, "https://example.com/a.txt", v.Rows[1].Href, "download url should be used when present")
	assert.False(t, v.Rows[1].Image, "text is not an image")

	assert.Equal(t, "b.png", v.Rows[2].Name, "b.png should render third")
	assert.True(t, v.Rows[2].Image, "b.png should be inlined")
	assert.Equal(t, "https://raw.githubusercontent.com/AvnishSingh-Ch/web-img/main/img/b.png", v.Rows[2].Href, "raw url should be the fallback")

	assert.False(t, v.Empty, "listing is not empty")
	assert.False(t, v.Loading(), "listing is not loading")
	assert.True(t, v.CanGoUp, "img has a parent")
	assert.Equal(t, "/", v.UpHref, "parent of img is root")
	assert.Equal(t, "/?path=img", v.RefreshHref, "refresh should keep the path")
}

func TestBuildViewCrumbs(t *testing.T) {
	v := BuildView(Initial("a/b/c"), &url.URL{Path: "/browse", RawQuery: "path=a%2Fb%2Fc"})

	assert.Equal(t, "/browse", v.Root.Href, "root crumb should drop the path")
	require.Len(t, v.Crumbs, 3, "one crumb per segment")
	assert.Equal(t, Crumb{Name: "a", Path: "a", Href: "/browse?path=a"}, v.Crumbs[0], "first crumb should match")
	assert.Equal(t, Crumb{Name: "b", Path: "a/b", Href: "/browse?path=a%2Fb"}, v.Crumbs[1], "second crumb should match")
	assert.Equal(t, Crumb{Name: "c", Path: "a/b/c", Href: "/browse?path=a%2Fb%2Fc"}, v.Crumbs[2], "third crumb should match")
}

func TestBuildViewStates(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		wantLoading bool
		wantFailed  bool
		wantEmpty   bool
		wantUp      bool
	}{
		{
			name:        "loading_root",
			state:       Initial(""),
			wantLoading: true,
		},
		{
			name: "empty_directory",
			state: func() State {
				s := Initial("empty")
				return Reduce(s, Loaded{Seq: s.Seq, Listing: &listing.Listing{Location: at("empty"), Items: []listing.Entry{}}})
			}(),
			wantEmpty: true,
			wantUp:    true,
		},
		{
			name: "error",
			state: func() State {
				s := Initial("x")
				return Reduce(s, Failed{Seq: s.Seq, Message: "HTTP 500"})
			}(),
			wantFailed: true,
			wantUp:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := BuildView(tt.state, nil)
			assert.Equal(t, tt.wantLoading, v.Loading(), "loading should match")
			assert.Equal(t, tt.wantFailed, v.Failed(), "failed should match")
			assert.Equal(t, tt.wantEmpty, v.Empty, "empty should match")
			assert.Equal(t, tt.wantUp, v.CanGoUp, "up should match")
			assert.Empty(t, v.Rows, "no rows should render")
		})
	}
}

func TestWithPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		path string
		want string
	}{
		{name: "set", url: "http://localhost:3000/", path: "docs", want: "http://localhost:3000/?path=docs"},
		{name: "replace", url: "/?path=old", path: "new/dir", want: "/?path=new%2Fdir"},
		{name: "remove_at_root", url: "/?path=old", path: "", want: "/"},
		{name: "slashes_only_is_root", url: "/?path=old&x=1", path: "//", want: "/?x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err, "url should parse")
			assert.Equal(t, tt.want, WithPath(u, tt.path).String(), "url should match")
			assert.Equal(t, listing.CleanPath(tt.path), PathFromURL(WithPath(u, tt.path)), "path should round trip")
		})
	}
}
