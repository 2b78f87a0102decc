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

package browse

import (
	"context"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/navigator"
)

// 📢 UserLogger provides user-friendly feedback about navigation
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 🧭 LogView prints where the navigator is and what happened to the last request
func (u *UserLogger) LogView(v navigator.View) {
	crumbs := make([]string, 0, len(v.Crumbs)+1)
	crumbs = append(crumbs, v.Root.Name)
	for _, c := range v.Crumbs {
		crumbs = append(crumbs, c.Name)
	}
	pterm.DefaultSection.Println(strings.Join(crumbs, " / "))

	switch {
	case v.Loading():
		pterm.Info.WithPrefix(pterm.Prefix{Text: "⏳"}).Println("Loading...")
	case v.Failed():
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(v.Err)
		u.log.Error().Str("path", v.Path).Str("error", v.Err).Msg("listing failed")
	case v.Empty:
		pterm.Info.WithPrefix(pterm.Prefix{Text: "📭"}).Println("This folder is empty")
	default:
		u.log.Debug().Str("path", v.Path).Int("rows", len(v.Rows)).Msg("listing shown")
	}
}

// 🔗 LogOpen reports the resolved URL of a chosen file
func (u *UserLogger) LogOpen(r navigator.Row) {
	prefix := "📄"
	if r.Image {
		prefix = "🖼️"
	}
	pterm.Success.WithPrefix(pterm.Prefix{Text: prefix}).Println(r.Href)
	u.log.Info().Str("path", r.Path).Str("url", r.Href).Bool("image", r.Image).Msg("opened file")
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}
