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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entry rows
	nameWidth   = 35 // Base width for entry name
	kindWidth   = 6  // Width for entry kind
	sizeWidth   = 10 // Width for size text
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *listing.Location
	entries int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatEntry formats one listing row for display
func (l *Logger) formatEntry(e listing.Entry) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case e.Kind == listing.KindDir:
		symbol = '▸'
		symbolColor = color.FgBlue
	case e.IsImage():
		symbol = '◆'
		symbolColor = color.FgMagenta
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	kindColor := color.FgYellow
	if e.Kind == listing.KindDir {
		kindColor = color.FgBlue
	}

	name := e.Name
	if e.Kind == listing.KindDir {
		name += "/"
	}

	size := listing.FormatSize(e.Size)
	if e.Kind == listing.KindDir || size == "" {
		size = "-"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, name),
		color.New(kindColor).Sprint(fmt.Sprintf("%-*s", kindWidth, string(e.Kind))),
		fmt.Sprintf("%*s", sizeWidth, size))
}

// 📝 LogEntry prints one listing row
func (l *Logger) LogEntry(ctx context.Context, e listing.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries++

	fmt.Fprintln(l.console, l.formatEntry(e))

	l.zlog.Debug().
		Str("name", e.Name).
		Str("kind", string(e.Kind)).
		Str("path", e.Path).
		Bool("is_image", e.IsImage()).
		Msg("entry")
}

// 📝 StartListing prints the header for a listing of loc
func (l *Logger) StartListing(ctx context.Context, loc listing.Location) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &loc
	l.entries = 0

	fmt.Fprintf(l.console, "[listing %s]\n",
		color.New(color.FgCyan).Sprint("/"+loc.Path))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(loc.Owner+"/"+loc.Repo),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(loc.Branch))

	l.zlog.Info().
		Str("owner", loc.Owner).
		Str("repo", loc.Repo).
		Str("branch", loc.Branch).
		Str("path", loc.Path).
		Msg("starting listing")
}

// 📝 EndListing ends the current listing, printing the empty marker when no rows were logged
func (l *Logger) EndListing(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	if l.entries == 0 {
		fmt.Fprintf(l.console, "%*s%s\n", entryIndent, "", color.New(color.Faint).Sprint("(empty)"))
	}

	l.zlog.Info().
		Str("location", l.current.String()).
		Int("entries", l.entries).
		Msg("listing complete")

	l.current = nil
	l.entries = 0
}

// 📝 LogListing prints a whole listing between StartListing and EndListing
func (l *Logger) LogListing(ctx context.Context, lst *listing.Listing) {
	l.StartListing(ctx, lst.Location)
	for _, e := range lst.Items {
		l.LogEntry(ctx, e)
	}
	l.EndListing(ctx)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("ghtree")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
