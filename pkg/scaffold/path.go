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

package scaffold

import (
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Role says which side of a scaffold mapping a path is on
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

// 📍 FilePath is an absolute scaffold path plus the relative form used in log lines
type FilePath struct {
	role        Role
	packageName string
	fullPath    string
	relPath     string
}

// 🏭 NewFilePath resolves path against projectRoot and records its relative form.
// projectRoot must be absolute or resolvable with filepath.Abs.
func NewFilePath(role Role, packageName, projectRoot, path string) (*FilePath, error) {
	if path == "" {
		return nil, errors.Errorf("%s path for package %q is empty", role, packageName)
	}

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, errors.Errorf("resolving project root: %w", err)
	}

	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, full)
	}
	full = filepath.Clean(full)

	rel, err := filepath.Rel(root, full)
	if err != nil {
		rel = full
	}

	return &FilePath{
		role:        role,
		packageName: packageName,
		fullPath:    full,
		relPath:     filepath.ToSlash(rel),
	}, nil
}

// Role returns whether this is a source or destination path.
func (p *FilePath) Role() Role { return p.role }

// PackageName returns the package that provides the scaffold file.
func (p *FilePath) PackageName() string { return p.packageName }

// FullPath returns the absolute path.
func (p *FilePath) FullPath() string { return p.fullPath }

// RelativePath returns the path relative to the project root, for display.
func (p *FilePath) RelativePath() string { return p.relPath }

func (p *FilePath) String() string { return p.relPath }
