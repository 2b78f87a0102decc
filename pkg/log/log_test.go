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
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/ghtree/pkg/listing"
)

func size(n int) *int { return &n }

func row(symbol, name, kind, size string) string {
	return fmt.Sprintf("%s %-35s %-6s %10s", symbol, name, kind, size)
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	loc := listing.Location{Owner: "AvnishSingh-Ch", Repo: "web-img", Branch: "main", Path: "img"}

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_listing",
			op: func(t *testing.T, logger *Logger) {
				logger.LogListing(context.Background(), &listing.Listing{
					Location: loc,
					Items: []listing.Entry{
						{Name: "A", Kind: listing.KindDir, Path: "img/A"},
						{Name: "a.txt", Kind: listing.KindFile, Path: "img/a.txt", Size: size(3)},
						{Name: "b.png", Kind: listing.KindFile, Path: "img/b.png", Size: size(2048)},
					},
				})
			},
			wantLogs: []string{
				"[listing /img]",
				"◆ AvnishSingh-Ch/web-img • main",
				row("▸", "A/", "dir", "-"),
				row("•", "a.txt", "file", "3 B"),
				row("◆", "b.png", "file", "2.0 KiB"),
			},
		},
		{
			name: "log_empty_listing",
			op: func(t *testing.T, logger *Logger) {
				logger.LogListing(context.Background(), &listing.Listing{Location: loc, Items: []listing.Entry{}})
			},
			wantLogs: []string{
				"[listing /img]",
				"◆ AvnishSingh-Ch/web-img • main",
				"(empty)",
			},
		},
		{
			name: "end_without_start",
			op: func(t *testing.T, logger *Logger) {
				logger.EndListing(context.Background())
				logger.Info("still here")
			},
			wantLogs: []string{
				"ℹ️  still here",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("serving on :3000")
				logger.Success("server stopped")
			},
			wantLogs: []string{
				"ℹ️  serving on :3000",
				"✅ server stopped",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("listing repository files")
			},
			wantLogs: []string{
				"ghtree • listing repository files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestEntryFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name  string
		entry listing.Entry
		want  string
	}{
		{
			name:  "directory",
			entry: listing.Entry{Name: "assets", Kind: listing.KindDir, Path: "assets", Size: size(0)},
			want:  "    " + row("▸", "assets/", "dir", "-"),
		},
		{
			name:  "image_uppercase_extension",
			entry: listing.Entry{Name: "LOGO.SVG", Kind: listing.KindFile, Path: "LOGO.SVG", Size: size(512)},
			want:  "    " + row("◆", "LOGO.SVG", "file", "512 B"),
		},
		{
			name:  "file_without_size",
			entry: listing.Entry{Name: "README.md", Kind: listing.KindFile, Path: "README.md"},
			want:  "    " + row("•", "README.md", "file", "-"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			logger.LogEntry(context.Background(), tt.entry)

			assert.Equal(t, tt.want, strings.TrimRight(buf.String(), "\n"), "formatted output should match")
		})
	}
}
