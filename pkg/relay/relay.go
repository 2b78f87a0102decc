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

package relay

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/config"
	"github.com/walteh/ghtree/pkg/listing"
	"github.com/walteh/ghtree/pkg/metrics"
	"gitlab.com/tozd/go/errors"
)

// GitHubClient defines the GitHub API operations the relay needs
type GitHubClient interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

// githubClientWrapper builds a fresh *github.Client for every call. go-github
// remembers the rate limit headers of earlier responses and refuses requests
// locally once they report an exhausted quota, so no client outlives a call.
type githubClientWrapper struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
}

func (w *githubClientWrapper) client() *github.Client {
	client := github.NewClient(w.httpClient)
	if w.token != "" {
		client = client.WithAuthToken(w.token)
	}
	if w.baseURL != nil {
		u := *w.baseURL
		client.BaseURL = &u
	}
	return client
}

func (w *githubClientWrapper) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	return w.client().Repositories.GetContents(ctx, owner, repo, path, opts)
}

// NewGitHubClient creates a contents API client. An empty baseURL means api.github.com,
// an empty token means unauthenticated requests.
func NewGitHubClient(baseURL, token string) (GitHubClient, error) {
	w := &githubClientWrapper{
		httpClient: &http.Client{},
		token:      token,
	}

	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Errorf("parsing base url: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		w.baseURL = u
	}

	return w, nil
}

// 🔀 Relay lists remote directories and normalizes the result
type Relay struct {
	client   GitHubClient
	defaults listing.Location
}

// 🏭 New creates a relay. defaults fills owner, repo and branch when a request omits them.
func New(client GitHubClient, defaults listing.Location) *Relay {
	return &Relay{
		client:   client,
		defaults: defaults,
	}
}

// 🏭 NewFromConfig creates a relay against the configured upstream
func NewFromConfig(cfg *config.Config) (*Relay, error) {
	client, err := NewGitHubClient(cfg.GitHub.BaseURL, cfg.Token())
	if err != nil {
		return nil, errors.Errorf("creating github client: %w", err)
	}
	return New(client, cfg.DefaultLocation()), nil
}

// Defaults returns the location used to fill omitted coordinates.
func (r *Relay) Defaults() listing.Location {
	return r.defaults
}

// 📂 ListDirectory queries the contents API once for loc and returns the sorted listing.
// Failures are *UpstreamError or *InternalError. Nothing is retried or cached.
func (r *Relay) ListDirectory(ctx context.Context, loc listing.Location) (*listing.Listing, error) {
	loc = loc.WithDefaults(r.defaults)

	logger := zerolog.Ctx(ctx).With().Str("location", loc.String()).Logger()
	logger.Debug().Msg("listing directory")

	start := time.Now()
	file, dir, resp, err := r.client.GetContents(ctx, loc.Owner, loc.Repo, loc.Path, &github.RepositoryContentGetOptions{
		Ref: loc.Branch,
	})
	took := time.Since(start)

	if err != nil {
		if uerr := upstreamError(resp, err); uerr != nil {
			logger.Warn().Int("status", uerr.Status).Dur("took", took).Msg("upstream rejected listing")
			metrics.ObserveListing(metrics.OutcomeUpstream, uerr.Status, took)
			return nil, uerr
		}

		logger.Error().Err(err).Dur("took", took).Msg("listing failed")
		metrics.ObserveListing(metrics.OutcomeInternal, statusOf(resp), took)
		return nil, &InternalError{Err: errors.WithStack(err)}
	}

	entries, err := Normalize(file, dir)
	if err != nil {
		logger.Error().Err(err).Msg("normalizing listing")
		metrics.ObserveListing(metrics.OutcomeInternal, statusOf(resp), took)
		return nil, &InternalError{Err: err}
	}

	listing.Sort(entries)

	logger.Debug().Int("items", len(entries)).Dur("took", took).Msg("listed directory")
	metrics.ObserveListing(metrics.OutcomeOK, statusOf(resp), took)

	return &listing.Listing{
		Location: loc,
		Items:    entries,
	}, nil
}

// 🔄 Normalize coerces the upstream result into entries. A single object (the path
// is a file) becomes a one-element slice.
func Normalize(file *github.RepositoryContent, dir []*github.RepositoryContent) ([]listing.Entry, error) {
	raw := dir
	if file != nil {
		raw = []*github.RepositoryContent{file}
	}

	entries := make([]listing.Entry, 0, len(raw))
	for i, item := range raw {
		e, err := toEntry(item)
		if err != nil {
			return nil, errors.Errorf("item %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// toEntry validates one upstream item. Any type other than "dir" is a file.
func toEntry(c *github.RepositoryContent) (listing.Entry, error) {
	if c == nil {
		return listing.Entry{}, errors.New("invalid upstream item: null")
	}
	if c.GetName() == "" {
		return listing.Entry{}, errors.Errorf("invalid upstream item at %q: missing name", c.GetPath())
	}
	if c.GetPath() == "" {
		return listing.Entry{}, errors.Errorf("invalid upstream item %q: missing path", c.GetName())
	}
	if c.GetType() == "" {
		return listing.Entry{}, errors.Errorf("invalid upstream item %q: missing type", c.GetPath())
	}

	e := listing.Entry{
		Name: c.GetName(),
		Kind: listing.KindFile,
		Path: c.GetPath(),
		Size: c.Size,
	}
	if c.GetType() == "dir" {
		e.Kind = listing.KindDir
	}
	if c.GetDownloadURL() != "" {
		u := c.GetDownloadURL()
		e.DownloadURL = &u
	}
	return e, nil
}

// upstreamError returns nil unless resp carries a non-2xx status. The message is the
// raw upstream body, falling back to err when the body is empty.
func upstreamError(resp *github.Response, err error) *UpstreamError {
	if resp == nil || resp.Response == nil {
		return nil
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := ""
	if resp.Body != nil {
		if body, rerr := io.ReadAll(resp.Body); rerr == nil {
			msg = string(body)
		}
	}
	if msg == "" {
		msg = err.Error()
	}

	return &UpstreamError{
		Status:  resp.StatusCode,
		Message: msg,
	}
}

func statusOf(resp *github.Response) int {
	if resp == nil || resp.Response == nil {
		return 0
	}
	return resp.StatusCode
}
