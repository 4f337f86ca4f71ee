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
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/scaffold"
	"gitlab.com/tozd/go/errors"
)

var locationToken = regexp.MustCompile(`\[([a-z0-9-]+)\]`)

// 🗺️ Interpolate replaces [location] tokens in path with their configured paths
func (m *Manifest) Interpolate(path string) (string, error) {
	var missing []string
	out := locationToken.ReplaceAllStringFunc(path, func(token string) string {
		name := locationToken.FindStringSubmatch(token)[1]
		if value, ok := m.Locations[name]; ok {
			return value
		}
		if name == ProjectRootLocation {
			return "."
		}
		missing = append(missing, name)
		return token
	})
	if len(missing) > 0 {
		return "", errors.Errorf("unknown location %q in %q", missing[0], path)
	}
	return out, nil
}

// 📋 Resolve turns the manifest into scaffold entries rooted at projectRoot, in manifest order
func (m *Manifest) Resolve(ctx context.Context, projectRoot string) ([]scaffold.Entry, error) {
	logger := zerolog.Ctx(ctx)

	var entries []scaffold.Entry
	for _, pkg := range m.Packages {
		if !m.IsAllowed(pkg.Name) {
			logger.Debug().Str("package", pkg.Name).Msg("package is not allowed to scaffold, skipping")
			continue
		}

		for _, f := range pkg.Files {
			dest, err := m.Interpolate(f.Destination)
			if err != nil {
				return nil, errors.Errorf("package %s: %w", pkg.Name, err)
			}

			src := f.Source
			if !filepath.IsAbs(src) {
				src = filepath.Join(pkg.Path, src)
			}
			source, err := scaffold.NewFilePath(scaffold.RoleSource, pkg.Name, projectRoot, src)
			if err != nil {
				return nil, errors.Errorf("package %s: resolving source: %w", pkg.Name, err)
			}

			destination, err := scaffold.NewFilePath(scaffold.RoleDestination, pkg.Name, projectRoot, dest)
			if err != nil {
				return nil, errors.Errorf("package %s: resolving destination: %w", pkg.Name, err)
			}

			overwrite := m.DefaultOverwrite()
			if f.Overwrite != nil {
				overwrite = *f.Overwrite
			}

			entries = append(entries, scaffold.Entry{
				Package:     pkg.Name,
				Source:      source,
				Destination: destination,
				Options: scaffold.Options{
					Overwrite: overwrite,
					Symlink:   m.Symlink,
				},
			})
		}
	}

	logger.Debug().Int("entries", len(entries)).Msg("resolved scaffold entries")
	return entries, nil
}
