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

// Package web renders the navigator as a plain HTML page. Every action is a link
// carrying the path parameter, so the address bar is the navigation history.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
	"github.com/walteh/ghtree/pkg/navigator"
	"gitlab.com/tozd/go/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"humanSize": listing.FormatSize,
}).ParseFS(templatesFS, "templates/index.html"))

// PageData is what the page template renders.
type PageData struct {
	Title string
	View  navigator.View
}

// 📄 Page serves the navigator page
type Page struct {
	lister navigator.Lister
	base   listing.Location
}

// 🏭 NewPage creates a page listing through lister. base supplies owner, repo and branch.
func NewPage(lister navigator.Lister, base listing.Location) *Page {
	return &Page{
		lister: lister,
		base:   base,
	}
}

// 🌐 Handle renders the navigator for the request's path parameter
func (p *Page) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	page := &url.URL{Path: c.Request().URL.Path, RawQuery: c.Request().URL.RawQuery}
	nav := navigator.New(p.lister, p.base, nil)
	state := nav.Start(ctx, navigator.PathFromURL(page))

	zerolog.Ctx(ctx).Debug().Str("path", state.Path).Str("phase", string(state.Phase)).Msg("rendering page")

	var buf bytes.Buffer
	if err := Render(&buf, p.title(), navigator.BuildView(state, page)); err != nil {
		return errors.Errorf("rendering page: %w", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (p *Page) title() string {
	return fmt.Sprintf("%s/%s@%s", p.base.Owner, p.base.Repo, p.base.Branch)
}

// Render writes the page for v.
func Render(w io.Writer, title string, v navigator.View) error {
	return pageTmpl.Execute(w, PageData{Title: title, View: v})
}
