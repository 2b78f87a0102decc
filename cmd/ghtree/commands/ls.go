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
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/walteh/ghtree/cmd/ghtree/opts"
	"gitlab.com/tozd/go/errors"
)

// NewLsCmd creates the ls command
func NewLsCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		server string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List one directory",
		Long: `Ls lists a single directory of the configured repository, directories first.
With --server it asks a running ghtree server instead of calling GitHub directly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			lister, err := opts.Lister(server)
			if err != nil {
				return err
			}

			loc := opts.Config.DefaultLocation()
			loc.Path = path

			l, err := lister.ListDirectory(ctx, loc)
			if err != nil {
				return errors.Errorf("listing /%s: %w", path, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(l)
			}

			opts.Console.LogListing(ctx, l)
			return nil
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "base URL of a running ghtree server")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as the relay's JSON")

	return cmd
}
