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

// 🔑 projectRootKey carries the project root into HCL evaluation
type projectRootKey struct{}

// WithProjectRoot makes root available as the project_root variable in HCL manifests.
// Load only defaults it to the manifest's directory when ctx carries no root.
func WithProjectRoot(ctx context.Context, root string) context.Context {
	return context.WithValue(ctx, projectRootKey{}, root)
}

func projectRootIn(ctx context.Context) (string, bool) {
	root, ok := ctx.Value(projectRootKey{}).(string)
	return root, ok
}

func projectRootFrom(ctx context.Context) string {
	if root, ok := projectRootIn(ctx); ok {
		return root
	}
	return "."
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the manifest from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Manifest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "scaffold.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project_root": cty.StringVal(projectRootFrom(ctx)),
		},
	}

	// Define HCL schema
	type hclFileMapping struct {
		Destination string `hcl:"destination"`
		Source      string `hcl:"source"`
		Overwrite   *bool  `hcl:"overwrite,optional"`
	}
	type hclPackage struct {
		Name  string           `hcl:"name,label"`
		Path  string           `hcl:"path"`
		Files []hclFileMapping `hcl:"file,block"`
	}
	type hclManifest struct {
		Symlink         bool              `hcl:"symlink,optional"`
		Overwrite       *bool             `hcl:"overwrite,optional"`
		Locations       map[string]string `hcl:"locations,optional"`
		AllowedPackages []string          `hcl:"allowed_packages,optional"`
		Packages        []hclPackage      `hcl:"package,block"`
	}

	var hclCfg hclManifest
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	m := &Manifest{
		Symlink:         hclCfg.Symlink,
		Overwrite:       hclCfg.Overwrite,
		Locations:       hclCfg.Locations,
		AllowedPackages: hclCfg.AllowedPackages,
	}
	for _, pkg := range hclCfg.Packages {
		converted := Package{Name: pkg.Name, Path: pkg.Path}
		for _, f := range pkg.Files {
			converted.Files = append(converted.Files, FileMapping{
				Destination: f.Destination,
				Source:      f.Source,
				Overwrite:   f.Overwrite,
			})
		}
		m.Packages = append(m.Packages, converted)
	}

	return m, nil
}
