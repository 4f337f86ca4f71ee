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
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for manifest parsers
type Parser interface {
	// 📝 Parse parses the manifest from bytes
	Parse(ctx context.Context, data []byte) (*Manifest, error)

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

// ProjectRootLocation is always available for destination interpolation.
const ProjectRootLocation = "project-root"

var locationName = regexp.MustCompile(`^[a-z0-9-]+$`)

// 📄 FileMapping maps one package file onto a project destination
type FileMapping struct {
	Destination string `json:"destination" yaml:"destination" toml:"destination"` // may contain [location] tokens
	Source      string `json:"source" yaml:"source" toml:"source"`                // relative to the package path
	Overwrite   *bool  `json:"overwrite,omitempty" yaml:"overwrite,omitempty" toml:"overwrite,omitempty"`
}

// 📦 Package is an installed package that provides scaffold files
type Package struct {
	Name  string        `json:"name" yaml:"name" toml:"name"`
	Path  string        `json:"path" yaml:"path" toml:"path"` // install directory, relative to the project root
	Files []FileMapping `json:"files" yaml:"files" toml:"files"`
}

// 📚 Manifest is the complete scaffold manifest for a project
type Manifest struct {
	Symlink         bool              `json:"symlink,omitempty" yaml:"symlink,omitempty" toml:"symlink,omitempty"`
	Overwrite       *bool             `json:"overwrite,omitempty" yaml:"overwrite,omitempty" toml:"overwrite,omitempty"`
	Locations       map[string]string `json:"locations,omitempty" yaml:"locations,omitempty" toml:"locations,omitempty"`
	AllowedPackages []string          `json:"allowed-packages,omitempty" yaml:"allowed-packages,omitempty" toml:"allowed-packages,omitempty"`
	Packages        []Package         `json:"packages" yaml:"packages" toml:"packages"`

	location string
}

// 🎯 Load loads the manifest from a file
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving manifest path: %w", err)
	}
	if _, ok := projectRootIn(ctx); !ok {
		ctx = WithProjectRoot(ctx, filepath.Dir(abs))
	}

	var m *Manifest
	if ext := filepath.Ext(path); ext == "" || ext == filepath.Base(path) {
		// extensionless manifests (.scaffoldrc) may be YAML or HCL
		m, err = parseAny(ctx, data, &YAMLParser{}, &HCLParser{})
	} else {
		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}
		m, err = p.Parse(ctx, data)
	}
	if err != nil {
		return nil, errors.Errorf("parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	m.location = abs

	logger.Debug().Str("path", abs).Int("packages", len(m.Packages)).Msg("loaded manifest")
	return m, nil
}

func parseAny(ctx context.Context, data []byte, candidates ...Parser) (*Manifest, error) {
	var errs []error
	for _, p := range candidates {
		m, err := p.Parse(ctx, data)
		if err == nil {
			return m, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Errorf("no parser accepted the manifest: %w", errors.Join(errs...))
}

// 🔍 Validate checks if the manifest is valid
func (m *Manifest) Validate() error {
	for name, path := range m.Locations {
		if !locationName.MatchString(name) {
			return errors.Errorf("location %q: name must match %s", name, locationName)
		}
		if strings.TrimSpace(path) == "" {
			return errors.Errorf("location %q: path is required", name)
		}
	}

	for _, pattern := range m.AllowedPackages {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("allowed package pattern %q is invalid", pattern)
		}
	}

	for i, pkg := range m.Packages {
		if pkg.Name == "" {
			return errors.Errorf("packages[%d].name is required", i)
		}
		if pkg.Path == "" {
			return errors.Errorf("package %q: path is required", pkg.Name)
		}
		for j, f := range pkg.Files {
			if f.Destination == "" {
				return errors.Errorf("package %q: files[%d].destination is required", pkg.Name, j)
			}
			if f.Source == "" {
				return errors.Errorf("package %q: files[%d].source is required", pkg.Name, j)
			}
		}
	}

	return nil
}

// 🚦 IsAllowed reports whether a package may place scaffold files
func (m *Manifest) IsAllowed(name string) bool {
	if len(m.AllowedPackages) == 0 {
		return true
	}
	for _, pattern := range m.AllowedPackages {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// DefaultOverwrite is the project-wide overwrite policy; it is on unless disabled.
func (m *Manifest) DefaultOverwrite() bool {
	if m.Overwrite == nil {
		return true
	}
	return *m.Overwrite
}

// Location returns the absolute path the manifest was loaded from.
func (m *Manifest) Location() string {
	return m.location
}

// 📝 String returns a string representation of the manifest
func (m *Manifest) String() string {
	files := 0
	for _, pkg := range m.Packages {
		files += len(pkg.Files)
	}
	mode := "copy"
	if m.Symlink {
		mode = "symlink"
	}
	return fmt.Sprintf("%d packages, %d files (%s, overwrite=%t)", len(m.Packages), files, mode, m.DefaultOverwrite())
}
