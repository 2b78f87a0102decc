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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/ghtree/cmd/ghtree/commands"
	"github.com/walteh/ghtree/cmd/ghtree/opts"
	"github.com/walteh/ghtree/pkg/browse"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	rootOpts := &opts.RootOpts{}

	rootCmd := newRootCmd(rootOpts)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		browse.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		return 1
	}
	return 0
}

func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ghtree",
		Short: "Browse a GitHub repository's file tree",
		Long: `ghtree relays GitHub's contents API as a small listing endpoint and walks
the repository tree with breadcrumbs, in a browser or in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := zerolog.Ctx(cmd.Context()).WithContext(cmd.Context())
			cmd.SetContext(ctx)
			return fillRootOpts(ctx, rootOpts)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewServeCmd(rootOpts),
		commands.NewLsCmd(rootOpts),
		commands.NewBrowseCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), FormatVersion())
			return nil
		},
	}
}
