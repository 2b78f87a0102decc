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
	"strings"

	"github.com/walteh/ghtree/pkg/listing"
)

// Phase is where the navigator is in its request cycle.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseLoaded  Phase = "loaded"
)

// 🧭 State is the navigation state: current path, its breadcrumbs and the outcome
// of the latest request. Seq identifies that request.
type State struct {
	Path    string
	Crumbs  []string
	Phase   Phase
	Err     string
	Listing *listing.Listing
	Seq     uint64
}

// Action is anything that moves the navigator from one State to the next.
type Action interface {
	isAction()
}

// Navigate targets an absolute path. Folder clicks, breadcrumb clicks and the
// initial load are all Navigate.
type Navigate struct {
	Path string
}

// Up targets the parent of the current path.
type Up struct{}

// Refresh re-requests the current path.
type Refresh struct{}

// Loaded completes request Seq with a listing.
type Loaded struct {
	Seq     uint64
	Listing *listing.Listing
}

// Failed completes request Seq with an error message.
type Failed struct {
	Seq     uint64
	Message string
}

func (Navigate) isAction() {}
func (Up) isAction()       {}
func (Refresh) isAction()  {}
func (Loaded) isAction()   {}
func (Failed) isAction()   {}

// Initial is the state after the first load of path.
func Initial(path string) State {
	return Reduce(State{}, Navigate{Path: path})
}

// 🔄 Reduce computes the state that follows a. It has no side effects; callers
// issue the request for the returned Seq when Phase is loading.
//
// Up at root returns s unchanged. Completions for any Seq other than the latest
// are dropped so a slow earlier request cannot overwrite a later one.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Navigate:
		return loading(s, listing.CleanPath(a.Path))
	case Up:
		if s.Path == "" {
			return s
		}
		return loading(s, listing.Parent(s.Path))
	case Refresh:
		return loading(s, s.Path)
	case Loaded:
		if a.Seq != s.Seq || s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseLoaded
		s.Listing = a.Listing
		s.Err = ""
		return s
	case Failed:
		if a.Seq != s.Seq || s.Phase != PhaseLoading {
			return s
		}
		s.Phase = PhaseError
		s.Listing = nil
		s.Err = a.Message
		return s
	}
	return s
}

func loading(s State, path string) State {
	return State{
		Path:   path,
		Crumbs: listing.Segments(path),
		Phase:  PhaseLoading,
		Seq:    s.Seq + 1,
	}
}

// CrumbPath is the target of breadcrumb i: the segments up to and including i.
// Any index below zero is the root crumb.
func (s State) CrumbPath(i int) string {
	if i < 0 {
		return ""
	}
	if i >= len(s.Crumbs) {
		i = len(s.Crumbs) - 1
	}
	return strings.Join(s.Crumbs[:i+1], "/")
}

// CanGoUp reports whether Up would change the path.
func (s State) CanGoUp() bool {
	return s.Path != ""
}

// Empty reports a loaded listing with no items.
func (s State) Empty() bool {
	return s.Phase == PhaseLoaded && s.Listing != nil && len(s.Listing.Items) == 0
}
