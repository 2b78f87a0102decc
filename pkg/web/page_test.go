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

package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ghtree/pkg/listing"
	"github.com/walteh/ghtree/pkg/navigator"
	"github.com/walteh/ghtree/pkg/relay"
)

var testBase = listing.Location{Owner: "AvnishSingh-Ch", Repo: "web-img", Branch: "main"}

// staticLister answers from a fixed map of path to result
type staticLister struct {
	listings map[string][]listing.Entry
	errs     map[string]error
	calls    []string
}

func (s *staticLister) ListDirectory(ctx context.Context, loc listing.Location) (*listing.Listing, error) {
	s.calls = append(s.calls, loc.Path)
	if err, ok := s.errs[loc.Path]; ok {
		return nil, err
	}
	entries := append([]listing.Entry{}, s.listings[loc.Path]...)
	listing.Sort(entries)
	return &listing.Listing{Location: loc, Items: entries}, nil
}

func size(n int) *int { return &n }

func newTestLister() *staticLister {
	return &staticLister{
		listings: map[string][]listing.Entry{
			"img": {
				{Name: "b.png", Kind: listing.KindFile, Path: "img/b.png", Size: size(2048)},
				{Name: "A", Kind: listing.KindDir, Path: "img/A"},
				{Name: "a.txt", Kind: listing.KindFile, Path: "img/a.txt", Size: size(3)},
			},
			"empty": {},
		},
		errs: map[string]error{
			"gone": &relay.UpstreamError{Status: 404, Message: "Not Found"},
		},
	}
}

func get(t *testing.T, p *Page, target string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, p.Handle(e.NewContext(req, rec)), "handler should succeed")
	return rec, rec.Body.String()
}

func TestPageListing(t *testing.T) {
	lister := newTestLister()
	rec, body := get(t, NewPage(lister, testBase), "/?path=img")

	assert.Equal(t, http.StatusOK, rec.Code, "page should render")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html", "page should be html")
	assert.Equal(t, []string{"img"}, lister.calls, "page should request the path parameter once")

	iA := strings.Index(body, ">A</a>")
	iTxt := strings.Index(body, ">a.txt</a>")
	iPng := strings.Index(body, ">b.png</a>")
	require.True(t, iA > 0 && iTxt > 0 && iPng > 0, "all entries should render")
	assert.Less(t, iA, iTxt, "directory should render before files")
	assert.Less(t, iTxt, iPng, "files should render in name order")

	assert.Contains(t, body, `<a href="/?path=img%2FA">A</a>`, "directory should link to its path")
	assert.Contains(t, body, `<img src="https://raw.githubusercontent.com/AvnishSingh-Ch/web-img/main/img/b.png" alt="b.png" loading="lazy">`, "image should be inlined lazily")
	assert.Equal(t, 1, strings.Count(body, "<img "), "only images should be inlined")
	assert.Contains(t, body, `target="_blank"`, "files should open in a new context")
	assert.Contains(t, body, "2.0 KiB", "file size should render")
	assert.Contains(t, body, `class="up" href="/"`, "up should link to the parent")
	assert.NotContains(t, body, `class="state loading"`, "loaded page should not show loading")
	assert.NotContains(t, body, `class="state empty"`, "non-empty listing should not show empty state")
}

func TestPageEmpty(t *testing.T) {
	_, body := get(t, NewPage(newTestLister(), testBase), "/?path=empty")

	assert.Contains(t, body, `class="state empty"`, "empty listing should show the empty indicator")
	assert.NotContains(t, body, `class="state loading"`, "empty listing should not show loading")
	assert.NotContains(t, body, `<ul class="entries">`, "empty listing should not render a list")
}

func TestPageError(t *testing.T) {
	_, body := get(t, NewPage(newTestLister(), testBase), "/?path=gone")

	assert.Contains(t, body, `<div class="state error">Not Found</div>`, "error message should render")
	assert.NotContains(t, body, `<ul class="entries">`, "no listing should render on error")
}

func TestPageRoot(t *testing.T) {
	lister := newTestLister()
	_, body := get(t, NewPage(lister, testBase), "/")

	assert.Equal(t, []string{""}, lister.calls, "missing path parameter should be root")
	assert.Contains(t, body, `<span class="up disabled">`, "up should be disabled at root")
	assert.Contains(t, body, "AvnishSingh-Ch/web-img@main", "title should name the repository")
}

func TestRenderLoading(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "t", navigator.BuildView(navigator.Initial("a/b"), nil)), "render should succeed")

	body := buf.String()
	assert.Contains(t, body, `class="state loading"`, "loading state should render the loading indicator")
	assert.Contains(t, body, `<a href="/?path=a">a</a>`, "first crumb should link to its prefix")
	assert.Contains(t, body, `<a href="/?path=a%2Fb">b</a>`, "second crumb should link to its prefix")
}
