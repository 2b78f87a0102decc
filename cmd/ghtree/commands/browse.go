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
	"github.com/spf13/cobra"
	"github.com/walteh/ghtree/cmd/ghtree/opts"
	"github.com/walteh/ghtree/pkg/browse"
	"gitlab.com/tozd/go/errors"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd(opts *opts.RootOpts) *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "browse [path]",
		Short: "Walk the repository tree interactively",
		Long: `Browse opens an interactive navigator in the terminal. Pick a folder to open it,
a breadcrumb to jump back, or a file to print its download URL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			lister, err := opts.Lister(server)
			if err != nil {
				return err
			}

			b, err := browse.New(browse.Options{
				Lister:  lister,
				Base:    opts.Config.DefaultLocation(),
				Logger:  opts.UserLogger,
				Spinner: true,
			})
			if err != nil {
				return errors.Errorf("creating browser: %w", err)
			}

			return b.Run(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "base URL of a running ghtree server")

	return cmd
}
