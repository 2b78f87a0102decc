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

package opts

import (
	"github.com/walteh/ghtree/pkg/browse"
	"github.com/walteh/ghtree/pkg/config"
	"github.com/walteh/ghtree/pkg/log"
	"github.com/walteh/ghtree/pkg/navigator"
	"github.com/walteh/ghtree/pkg/relay"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands. It is filled in before
// any command runs.
type RootOpts struct {
	Config     *config.Config
	Console    *log.Logger
	UserLogger *browse.UserLogger
}

// Lister returns the relay HTTP client for server, or an in-process relay when
// server is empty.
func (o *RootOpts) Lister(server string) (navigator.Lister, error) {
	if server != "" {
		c, err := relay.NewClient(server, nil)
		if err != nil {
			return nil, errors.Errorf("creating relay client: %w", err)
		}
		return c, nil
	}

	r, err := relay.NewFromConfig(o.Config)
	if err != nil {
		return nil, errors.Errorf("creating relay: %w", err)
	}
	return r, nil
}
