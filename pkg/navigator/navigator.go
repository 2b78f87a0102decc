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
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
)

// Lister fetches one directory listing. Both the in-process relay and the relay
// HTTP client satisfy it.
type Lister interface {
	ListDirectory(ctx context.Context, loc listing.Location) (*listing.Listing, error)
}

// 🧭 Navigator applies actions to a State, issues the listing request each one
// calls for and mirrors path changes into a History
type Navigator struct {
	mu      sync.Mutex
	lister  Lister
	base    listing.Location
	history History
	state   State
}

// 🏭 New creates a navigator over lister. base supplies owner, repo and branch for
// every request; history may be nil.
func New(lister Lister, base listing.Location, history History) *Navigator {
	return &Navigator{
		lister:  lister,
		base:    base,
		history: history,
	}
}

// State returns the current state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// 🚀 Start performs the initial load of path. The address already holds path so
// nothing is pushed.
func (n *Navigator) Start(ctx context.Context, path string) State {
	return n.dispatch(ctx, Navigate{Path: path}, false)
}

// 📂 Open navigates to path (folder click).
func (n *Navigator) Open(ctx context.Context, path string) State {
	return n.dispatch(ctx, Navigate{Path: path}, true)
}

// ⬆️ Up navigates to the parent. At root it returns the state untouched.
func (n *Navigator) Up(ctx context.Context) State {
	return n.dispatch(ctx, Up{}, true)
}

// 🍞 Crumb navigates to breadcrumb i; a negative i is the root crumb.
func (n *Navigator) Crumb(ctx context.Context, i int) State {
	return n.Open(ctx, n.State().CrumbPath(i))
}

// 🔁 Refresh re-requests the current path without touching history.
func (n *Navigator) Refresh(ctx context.Context) State {
	return n.dispatch(ctx, Refresh{}, false)
}

func (n *Navigator) dispatch(ctx context.Context, a Action, push bool) State {
	n.mu.Lock()
	prev := n.state
	next := Reduce(prev, a)
	n.state = next
	// pushed under the lock so history order follows Seq order
	if next.Seq != prev.Seq && push && n.history != nil {
		n.history.Push(next.Path)
	}
	n.mu.Unlock()

	if next.Seq == prev.Seq {
		return next
	}

	return n.load(ctx, next)
}

func (n *Navigator) load(ctx context.Context, s State) State {
	loc := n.base
	loc.Path = s.Path

	logger := zerolog.Ctx(ctx).With().Uint64("seq", s.Seq).Str("path", s.Path).Logger()
	logger.Debug().Msg("loading listing")

	var done Action
	l, err := n.lister.ListDirectory(ctx, loc)
	if err != nil {
		logger.Debug().Err(err).Msg("listing failed")
		done = Failed{Seq: s.Seq, Message: err.Error()}
	} else {
		done = Loaded{Seq: s.Seq, Listing: l}
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state.Seq != s.Seq {
		logger.Debug().Uint64("latest", n.state.Seq).Msg("dropping stale listing")
	}
	n.state = Reduce(n.state, done)
	return n.state
}
