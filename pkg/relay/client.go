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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
	"gitlab.com/tozd/go/errors"
)

// 📡 Client calls a running relay over HTTP
type Client struct {
	endpoint *url.URL
	http     *http.Client
}

// 🏭 NewClient creates a client for the relay served at serverURL
func NewClient(serverURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, errors.Errorf("parsing server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("server url must be http or https: %q", serverURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + ListPath

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint: u,
		http:     httpClient,
	}, nil
}

type listResponse struct {
	listing.Listing
	Error   bool   `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// 📂 ListDirectory fetches one listing. A non-2xx status or an error body is returned
// as *UpstreamError carrying the relay's message, or "HTTP <status>" when it sent none.
func (c *Client) ListDirectory(ctx context.Context, loc listing.Location) (*listing.Listing, error) {
	u := *c.endpoint
	u.RawQuery = url.Values{
		"owner":  {loc.Owner},
		"repo":   {loc.Repo},
		"branch": {loc.Branch},
		"path":   {loc.Path},
	}.Encode()

	zerolog.Ctx(ctx).Debug().Str("url", u.String()).Msg("requesting listing")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &InternalError{Err: errors.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &InternalError{Err: err}
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if !ok {
			return nil, &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
		}
		return nil, &InternalError{Err: errors.Errorf("decoding listing: %w", err)}
	}

	if !ok || out.Error {
		msg := out.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		status := out.Status
		if status == 0 {
			status = resp.StatusCode
		}
		return nil, &UpstreamError{Status: status, Message: msg}
	}

	if out.Items == nil {
		out.Items = []listing.Entry{}
	}
	if !listing.IsSorted(out.Items) {
		listing.Sort(out.Items)
	}
	return &out.Listing, nil
}
