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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/ghtree/cmd/ghtree/opts"
	"github.com/walteh/ghtree/pkg/browse"
	"github.com/walteh/ghtree/pkg/config"
	"github.com/walteh/ghtree/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	owner      string
	repo       string
	branch     string
)

// fillRootOpts loads config and builds the shared loggers
func fillRootOpts(ctx context.Context, o *opts.RootOpts) error {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// flags override the file
	if owner != "" {
		cfg.Repository.Owner = owner
	}
	if repo != "" {
		cfg.Repository.Repo = repo
	}
	if branch != "" {
		cfg.Repository.Branch = branch
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	o.Config = cfg
	o.Console = log.New(os.Stdout, level)
	o.UserLogger = browse.NewUserLogger(ctx)

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&owner, "owner", "", "repository owner (default "+config.DefaultOwner+")")
	cmd.PersistentFlags().StringVar(&repo, "repo", "", "repository name (default "+config.DefaultRepo+")")
	cmd.PersistentFlags().StringVar(&branch, "branch", "", "branch or ref (default "+config.DefaultBranch+")")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
