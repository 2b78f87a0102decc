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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL. Environment variables are exposed as env.NAME.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(os.Environ()),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Repository *struct {
			Owner  string `hcl:"owner,optional"`
			Repo   string `hcl:"repo,optional"`
			Branch string `hcl:"branch,optional"`
		} `hcl:"repository,block"`
		Server *struct {
			Listen string `hcl:"listen,optional"`
		} `hcl:"server,block"`
		GitHub *struct {
			BaseURL  string `hcl:"base_url,optional"`
			TokenEnv string `hcl:"token_env,optional"`
		} `hcl:"github,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{}
	if hclCfg.Repository != nil {
		cfg.Repository = RepositoryArgs{
			Owner:  hclCfg.Repository.Owner,
			Repo:   hclCfg.Repository.Repo,
			Branch: hclCfg.Repository.Branch,
		}
	}
	if hclCfg.Server != nil {
		cfg.Server.Listen = hclCfg.Server.Listen
	}
	if hclCfg.GitHub != nil {
		cfg.GitHub = GitHubArgs{
			BaseURL:  hclCfg.GitHub.BaseURL,
			TokenEnv: hclCfg.GitHub.TokenEnv,
		}
	}

	return cfg, nil
}

// envObject turns KEY=VALUE pairs into a cty object
func envObject(environ []string) cty.Value {
	vals := map[string]cty.Value{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	if len(vals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vals)
}
