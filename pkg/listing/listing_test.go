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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    []string
	}{
		{
			name: "dirs_before_files",
			entries: []Entry{
				{Name: "b.png", Kind: KindFile},
				{Name: "A", Kind: KindDir},
				{Name: "a.txt", Kind: KindFile},
			},
			want: []string{"A", "a.txt", "b.png"},
		},
		{
			name: "case_insensitive_within_group",
			entries: []Entry{
				{Name: "cherry", Kind: KindFile},
				{Name: "banana", Kind: KindFile},
				{Name: "Apple", Kind: KindFile},
			},
			want: []string{"Apple", "banana", "cherry"},
		},
		{
			name: "mixed_groups",
			entries: []Entry{
				{Name: "zeta", Kind: KindDir},
				{Name: "alpha.md", Kind: KindFile},
				{Name: "Beta", Kind: KindDir},
				{Name: "Gamma.go", Kind: KindFile},
			},
			want: []string{"Beta", "zeta", "alpha.md", "Gamma.go"},
		},
		{
			name:    "empty",
			entries: []Entry{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Sort(tt.entries)
			assert.Equal(t, tt.want, names(tt.entries), "entry order should match")
			assert.True(t, IsSorted(tt.entries), "sorted entries should satisfy ordering")
		})
	}
}

func TestIsSorted(t *testing.T) {
	assert.False(t, IsSorted([]Entry{
		{Name: "a.txt", Kind: KindFile},
		{Name: "A", Kind: KindDir},
	}), "file before dir should not be sorted")

	assert.False(t, IsSorted([]Entry{
		{Name: "b", Kind: KindDir},
		{Name: "a", Kind: KindDir},
	}), "descending names should not be sorted")
}

func TestSegmentsAndParent(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantSegs   []string
		wantClean  string
		wantParent string
	}{
		{name: "root", path: "", wantSegs: []string{}, wantClean: "", wantParent: ""},
		{name: "slash_only", path: "/", wantSegs: []string{}, wantClean: "", wantParent: ""},
		{name: "single", path: "blog-img", wantSegs: []string{"blog-img"}, wantClean: "blog-img", wantParent: ""},
		{name: "nested", path: "blog-img/2024/may", wantSegs: []string{"blog-img", "2024", "may"}, wantClean: "blog-img/2024/may", wantParent: "blog-img/2024"},
		{name: "boundary_slashes", path: "/a//b/", wantSegs: []string{"a", "b"}, wantClean: "a/b", wantParent: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSegs, Segments(tt.path), "segments should match")
			assert.Equal(t, tt.wantClean, CleanPath(tt.path), "clean path should match")
			assert.Equal(t, tt.wantParent, Parent(tt.path), "parent should match")
		})
	}
}

func TestWithDefaults(t *testing.T) {
	defaults := Location{Owner: "AvnishSingh-Ch", Repo: "web-img", Branch: "main"}

	got := Location{Path: "/blog-img/"}.WithDefaults(defaults)
	assert.Equal(t, Location{Owner: "AvnishSingh-Ch", Repo: "web-img", Branch: "main", Path: "blog-img"}, got, "defaults should fill empty fields")

	got = Location{Owner: "walteh", Repo: "copyrc", Branch: "dev"}.WithDefaults(defaults)
	assert.Equal(t, Location{Owner: "walteh", Repo: "copyrc", Branch: "dev"}, got, "explicit fields should win")
}

func TestResolveURL(t *testing.T) {
	l := &Listing{Location: Location{Owner: "walteh", Repo: "copyrc", Branch: "main", Path: "img"}}
	direct := "https://example.com/direct.png"

	assert.Equal(t, direct, l.ResolveURL(Entry{Name: "direct.png", Kind: KindFile, Path: "img/direct.png", DownloadURL: &direct}), "download url should win")
	assert.Equal(t, "https://raw.githubusercontent.com/walteh/copyrc/main/img/a%20b.png",
		l.ResolveURL(Entry{Name: "a b.png", Kind: KindFile, Path: "img/a b.png"}), "raw url should be built when download url is missing")

	empty := ""
	assert.Equal(t, "https://raw.githubusercontent.com/walteh/copyrc/main/img/x.svg",
		l.ResolveURL(Entry{Name: "x.svg", Kind: KindFile, Path: "img/x.svg", DownloadURL: &empty}), "empty download url should fall back")
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "b.png", want: true},
		{name: "photo.JPG", want: true},
		{name: "photo.jpeg", want: true},
		{name: "anim.Gif", want: true},
		{name: "pic.webp", want: true},
		{name: "logo.SVG", want: true},
		{name: "a.txt", want: false},
		{name: "png", want: false},
		{name: "archive.png.zip", want: false},
		{name: "photo.jpe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.name), "image detection should match")
		})
	}

	dir := Entry{Name: "icons.png", Kind: KindDir}
	require.False(t, dir.IsImage(), "directories are never images")
}
