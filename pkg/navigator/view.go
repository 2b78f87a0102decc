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

	"github.com/walteh/ghtree/pkg/listing"
)

// Crumb is one breadcrumb link.
type Crumb struct {
	Name string
	Path string
	Href string
}

// Row is one rendered entry. Directory hrefs navigate; file hrefs are the
// resolved download URL.
type Row struct {
	Name  string
	Path  string
	Dir   bool
	Image bool
	Href  string
	Size  *int
}

// 🖼️ View is everything a surface needs to draw a State
type View struct {
	Phase    Phase
	Path     string
	Location listing.Location
	Err      string

	Root   Crumb
	Crumbs []Crumb

	CanGoUp     bool
	UpHref      string
	RefreshHref string

	Rows  []Row
	Empty bool
}

// Loading reports whether a request is in flight.
func (v View) Loading() bool { return v.Phase == PhaseLoading }

// Failed reports whether the last request failed.
func (v View) Failed() bool { return v.Phase == PhaseError }

// 🖼️ BuildView derives the view of s. page is the address navigation links are
// built on; its path parameter is replaced per link.
func BuildView(s State, page *url.URL) View {
	if page == nil {
		page = &url.URL{Path: "/"}
	}
	href := func(p string) string {
		return WithPath(page, p).String()
	}

	v := View{
		Phase:       s.Phase,
		Path:        s.Path,
		Err:         s.Err,
		Root:        Crumb{Name: "root", Path: "", Href: href("")},
		Crumbs:      make([]Crumb, 0, len(s.Crumbs)),
		CanGoUp:     s.CanGoUp(),
		RefreshHref: href(s.Path),
		Empty:       s.Empty(),
	}
	if v.CanGoUp {
		v.UpHref = href(listing.Parent(s.Path))
	}

	for i, name := range s.Crumbs {
		p := s.CrumbPath(i)
		v.Crumbs = append(v.Crumbs, Crumb{Name: name, Path: p, Href: href(p)})
	}

	if s.Phase != PhaseLoaded || s.Listing == nil {
		return v
	}

	v.Location = s.Listing.Location
	v.Rows = make([]Row, 0, len(s.Listing.Items))
	for _, e := range s.Listing.Items {
		r := Row{
			Name: e.Name,
			Path: e.Path,
			Dir:  e.Kind == listing.KindDir,
			Size: e.Size,
		}
		if r.Dir {
			r.Href = href(e.Path)
		} else {
			r.Href = s.Listing.ResolveURL(e)
			r.Image = e.IsImage()
		}
		v.Rows = append(v.Rows, r)
	}
	return v
}
