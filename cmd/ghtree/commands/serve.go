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

package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/ghtree/cmd/ghtree/opts"
	"github.com/walteh/ghtree/pkg/relay"
	"github.com/walteh/ghtree/pkg/server"
	"github.com/walteh/ghtree/pkg/web"
	"gitlab.com/tozd/go/errors"
)

// NewServeCmd creates the serve command
func NewServeCmd(opts *opts.RootOpts) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the listing API and the navigator page",
		Long: `Serve starts an HTTP server with:
  GET /api/list   listing relay (owner, repo, branch, path query parameters)
  GET /           navigator page, driven by the path query parameter
  GET /healthz    liveness
  GET /metrics    prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				opts.Config.Server.Listen = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ctx = zerolog.Ctx(ctx).With().Str("command", "serve").Logger().WithContext(ctx)

			r, err := relay.NewFromConfig(opts.Config)
			if err != nil {
				return errors.Errorf("creating relay: %w", err)
			}

			srv := server.New(ctx, r, web.NewPage(r, r.Defaults()))

			opts.Console.Header("serving " + opts.Config.String())
			opts.Console.Info("listings at " + relay.ListPath + ", metrics at /metrics")
			if err := srv.Run(ctx, opts.Config.Server.Listen); err != nil {
				return errors.Errorf("running server: %w", err)
			}

			opts.Console.Success("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, then :3000)")

	return cmd
}
