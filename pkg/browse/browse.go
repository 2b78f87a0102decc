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

// Package browse is the interactive terminal navigator.
package browse

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
	"github.com/walteh/ghtree/pkg/navigator"
	"gitlab.com/tozd/go/errors"
)

const (
	labelUp      = "⬆️  .."
	labelRefresh = "🔁 refresh"
	labelRoot    = "🏠 /"
	labelQuit    = "🚪 quit"
)

// Prompter asks the user to pick one of options.
type Prompter interface {
	Select(title string, options []string) (string, error)
}

// 🎛️ PtermPrompter prompts with pterm's interactive select
type PtermPrompter struct {
	MaxHeight int
}

func (p PtermPrompter) Select(title string, options []string) (string, error) {
	height := p.MaxHeight
	if height == 0 {
		height = 15
	}
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(title).
		WithMaxHeight(height).
		Show()
}

// Options configures a Browser.
type Options struct {
	Lister   navigator.Lister
	Base     listing.Location
	Prompter Prompter
	Logger   *UserLogger
	// Spinner shows a pterm spinner while a listing loads.
	Spinner bool
}

// 🗂️ Browser runs the navigator loop in a terminal
type Browser struct {
	opts    Options
	nav     *navigator.Navigator
	history *navigator.URLHistory
}

// 🏭 New creates a browser
func New(opts Options) (*Browser, error) {
	if opts.Lister == nil {
		return nil, errors.New("browse: lister is required")
	}
	if opts.Prompter == nil {
		opts.Prompter = PtermPrompter{}
	}
	return &Browser{opts: opts}, nil
}

// History returns the addresses visited by the last Run.
func (b *Browser) History() *navigator.URLHistory {
	return b.history
}

// choice is one selectable line and what picking it does
type choice struct {
	label string
	run   func(ctx context.Context) (done bool)
}

// 🚀 Run starts at path and loops until the user quits or the prompt fails.
func (b *Browser) Run(ctx context.Context, path string) error {
	b.history = navigator.NewURLHistory(navigator.WithPath(&url.URL{Path: "/"}, path))
	b.nav = navigator.New(b.opts.Lister, b.opts.Base, b.history)

	b.load(ctx, path, func(ctx context.Context) { b.nav.Start(ctx, path) })

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		v := navigator.BuildView(b.nav.State(), b.history.Current())
		if b.opts.Logger != nil {
			b.opts.Logger.LogView(v)
		}

		choices := b.choices(v)
		labels := make([]string, 0, len(choices))
		for _, c := range choices {
			labels = append(labels, c.label)
		}

		picked, err := b.opts.Prompter.Select(title(v), labels)
		if err != nil {
			return errors.Errorf("prompting: %w", err)
		}

		var run func(ctx context.Context) bool
		for _, c := range choices {
			if c.label == picked {
				run = c.run
				break
			}
		}
		if run == nil {
			zerolog.Ctx(ctx).Warn().Str("choice", picked).Msg("unknown choice")
			continue
		}
		if run(ctx) {
			return nil
		}
	}
}

func (b *Browser) choices(v navigator.View) []choice {
	var out []choice
	add := func(label string, run func(ctx context.Context) bool) {
		out = append(out, choice{label: label, run: run})
	}

	if v.CanGoUp {
		add(labelUp, func(ctx context.Context) bool {
			b.load(ctx, listing.Parent(v.Path), func(ctx context.Context) { b.nav.Up(ctx) })
			return false
		})
	}
	add(labelRefresh, func(ctx context.Context) bool {
		b.load(ctx, v.Path, func(ctx context.Context) { b.nav.Refresh(ctx) })
		return false
	})
	if v.CanGoUp {
		add(labelRoot, func(ctx context.Context) bool {
			b.load(ctx, "", func(ctx context.Context) { b.nav.Crumb(ctx, -1) })
			return false
		})
	}
	// the last crumb is the current directory, refresh covers it
	for i := 0; i < len(v.Crumbs)-1; i++ {
		add(fmt.Sprintf("🍞 /%s", v.Crumbs[i].Path), func(ctx context.Context) bool {
			b.load(ctx, v.Crumbs[i].Path, func(ctx context.Context) { b.nav.Crumb(ctx, i) })
			return false
		})
	}

	for _, r := range v.Rows {
		if r.Dir {
			add(fmt.Sprintf("📁 %s/", r.Name), func(ctx context.Context) bool {
				b.load(ctx, r.Path, func(ctx context.Context) { b.nav.Open(ctx, r.Path) })
				return false
			})
			continue
		}
		label := "📄 " + r.Name
		if r.Image {
			label = "🖼️  " + r.Name
		}
		add(label, func(ctx context.Context) bool {
			if b.opts.Logger != nil {
				b.opts.Logger.LogOpen(r)
			}
			return false
		})
	}

	add(labelQuit, func(ctx context.Context) bool { return true })
	return out
}

// load runs one navigation, wrapped in a spinner when enabled
func (b *Browser) load(ctx context.Context, target string, do func(ctx context.Context)) {
	if !b.opts.Spinner {
		do(ctx)
		return
	}

	spinner, err := pterm.DefaultSpinner.Start(fmt.Sprintf("Loading /%s", target))
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("starting spinner")
		do(ctx)
		return
	}
	do(ctx)

	s := b.nav.State()
	if s.Phase == navigator.PhaseError {
		spinner.Fail(fmt.Sprintf("/%s", s.Path))
		return
	}
	spinner.Success(fmt.Sprintf("/%s", s.Path))
}

func title(v navigator.View) string {
	if v.Location.Owner == "" {
		return "/" + v.Path
	}
	return v.Location.String()
}
