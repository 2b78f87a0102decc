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

package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/ghtree/pkg/listing"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🎛️ Built-in defaults, used when neither the config file nor flags set a value
const (
	DefaultOwner    = "AvnishSingh-Ch"
	DefaultRepo     = "web-img"
	DefaultBranch   = "main"
	DefaultListen   = ":3000"
	DefaultTokenEnv = "GITHUB_TOKEN"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 RepositoryArgs is the repository browsed when a request leaves it unset
type RepositoryArgs struct {
	Owner  string `json:"owner" yaml:"owner"`
	Repo   string `json:"repo" yaml:"repo"`
	Branch string `json:"branch" yaml:"branch"`
}

// 🌐 ServerArgs configures the HTTP listener
type ServerArgs struct {
	Listen string `json:"listen" yaml:"listen"`
}

// 🐙 GitHubArgs configures the upstream contents API
type GitHubArgs struct {
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`   // Empty means api.github.com
	TokenEnv string `json:"token_env,omitempty" yaml:"token_env,omitempty"` // Env var holding the optional bearer token
}

// 📚 Config represents the complete configuration
type Config struct {
	Repository RepositoryArgs `json:"repository" yaml:"repository"`
	Server     ServerArgs     `json:"server" yaml:"server"`
	GitHub     GitHubArgs     `json:"github" yaml:"github"`
}

// 🏭 Default returns a validated config holding only built-in defaults
func Default() *Config {
	cfg := &Config{}
	// defaults always validate
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file. An empty path yields Default().
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file given, using defaults")
		return Default(), nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills defaults
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.Repository.Owner == "" {
		cfg.Repository.Owner = DefaultOwner
	}
	if cfg.Repository.Repo == "" {
		cfg.Repository.Repo = DefaultRepo
	}
	if cfg.Repository.Branch == "" {
		cfg.Repository.Branch = DefaultBranch
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = DefaultTokenEnv
	}

	if strings.Contains(cfg.Repository.Owner, "/") {
		return errors.Errorf("repository.owner must not contain '/': %q", cfg.Repository.Owner)
	}
	if strings.Contains(cfg.Repository.Repo, "/") {
		return errors.Errorf("repository.repo must not contain '/': %q", cfg.Repository.Repo)
	}

	if cfg.GitHub.BaseURL != "" {
		u, err := url.Parse(cfg.GitHub.BaseURL)
		if err != nil {
			return errors.Errorf("github.base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("github.base_url must be http or https: %q", cfg.GitHub.BaseURL)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		cfg.GitHub.BaseURL = u.String()
	}

	return nil
}

// 🔑 Token returns the optional upstream bearer token from the environment
func (cfg *Config) Token() string {
	return os.Getenv(cfg.GitHub.TokenEnv)
}

// 📍 DefaultLocation returns the repository root used when requests omit coordinates
func (cfg *Config) DefaultLocation() listing.Location {
	return listing.Location{
		Owner:  cfg.Repository.Owner,
		Repo:   cfg.Repository.Repo,
		Branch: cfg.Repository.Branch,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	branch := cfg.Repository.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	return fmt.Sprintf("%s/%s@%s on %s", cfg.Repository.Owner, cfg.Repository.Repo, branch, cfg.Server.Listen)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
