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

package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/config"
	"github.com/walteh/scaffoldrc/pkg/scaffold"
	"github.com/walteh/scaffoldrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for a scaffold run
type Options struct {
	// Workers bounds concurrent source checks; zero means DefaultWorkers
	Workers int
	// Formatter formats results and progress; nil means the default formatter
	Formatter status.FileFormatter
	// ProjectRoot overrides the manifest's directory as the project root
	ProjectRoot string
}

// 📋 Plan loads the manifest at path and resolves it into entries
func Plan(ctx context.Context, path string, opts Options) (*config.Manifest, []scaffold.Entry, error) {
	root := opts.ProjectRoot
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, nil, errors.Errorf("resolving project root: %w", err)
		}
		root = abs
		ctx = config.WithProjectRoot(ctx, root)
	}

	m, err := config.Load(ctx, path)
	if err != nil {
		return nil, nil, errors.Errorf("loading manifest: %w", err)
	}

	if root == "" {
		root = filepath.Dir(m.Location())
	}

	entries, err := m.Resolve(ctx, root)
	if err != nil {
		return nil, nil, errors.Errorf("resolving manifest: %w", err)
	}
	return m, entries, nil
}

// 🏗️ Scaffold places every scaffold file the manifest at path describes
func Scaffold(ctx context.Context, path string, opts Options) (*status.Summary, error) {
	m, entries, err := Plan(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("manifest", m.String()).Msg("scaffolding")

	return NewRunner(opts).Run(ctx, entries)
}
