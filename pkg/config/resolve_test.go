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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	m := &Manifest{Locations: map[string]string{"web-root": "web", "app-root": "app/src"}}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "single_token", path: "[web-root]/robots.txt", want: "web/robots.txt"},
		{name: "two_tokens", path: "[app-root]/[web-root]", want: "app/src/web"},
		{name: "builtin_project_root", path: "[project-root]/.editorconfig", want: "./.editorconfig"},
		{name: "no_tokens", path: "plain/path.txt", want: "plain/path.txt"},
		{name: "unknown_token", path: "[docs-root]/index.md", wantErr: `unknown location "docs-root"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Interpolate(tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		pkg     string
		want    bool
	}{
		{name: "empty_allows_all", pkg: "anything/at-all", want: true},
		{name: "exact", allowed: []string{"acme/core"}, pkg: "acme/core", want: true},
		{name: "vendor_glob", allowed: []string{"acme/*"}, pkg: "acme/core", want: true},
		{name: "not_matched", allowed: []string{"acme/*"}, pkg: "other/core", want: false},
		{name: "double_star", allowed: []string{"**/core"}, pkg: "acme/core", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{AllowedPackages: tt.allowed}
			assert.Equal(t, tt.want, m.IsAllowed(tt.pkg))
		})
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	off := false
	on := true
	m := &Manifest{
		Symlink:         true,
		Locations:       map[string]string{"web-root": "web"},
		AllowedPackages: []string{"acme/*"},
		Packages: []Package{
			{
				Name: "acme/core",
				Path: "vendor/acme/core",
				Files: []FileMapping{
					{Destination: "[web-root]/robots.txt", Source: "assets/robots.txt"},
					{Destination: "[web-root]/.htaccess", Source: "assets/htaccess", Overwrite: &off},
				},
			},
			{
				Name:  "other/theme",
				Path:  "vendor/other/theme",
				Files: []FileMapping{{Destination: "theme.css", Source: "theme.css"}},
			},
			{
				Name: "acme/extras",
				Path: "vendor/acme/extras",
				Files: []FileMapping{
					{Destination: "[web-root]/robots.txt", Source: "robots.txt", Overwrite: &on},
				},
			},
		},
	}

	entries, err := m.Resolve(ctx, root)
	require.NoError(t, err)
	require.Len(t, entries, 3, "disallowed package should be skipped")

	assert.Equal(t, "acme/core", entries[0].Package)
	assert.Equal(t, filepath.Join(root, "vendor/acme/core/assets/robots.txt"), entries[0].Source.FullPath())
	assert.Equal(t, "vendor/acme/core/assets/robots.txt", entries[0].Source.RelativePath())
	assert.Equal(t, filepath.Join(root, "web/robots.txt"), entries[0].Destination.FullPath())
	assert.Equal(t, "web/robots.txt", entries[0].Destination.RelativePath())
	assert.True(t, entries[0].Options.Overwrite, "overwrite should default to true")
	assert.True(t, entries[0].Options.Symlink, "symlink should be inherited from the manifest")

	assert.False(t, entries[1].Options.Overwrite, "per-file overwrite should win")
	assert.Equal(t, "web/.htaccess", entries[1].Destination.RelativePath())

	// same destination twice: both kept, in manifest order
	assert.Equal(t, "acme/extras", entries[2].Package)
	assert.Equal(t, entries[0].Destination.FullPath(), entries[2].Destination.FullPath())
}

func TestResolveProjectDefaultOverwrite(t *testing.T) {
	off := false
	on := true
	m := &Manifest{
		Overwrite: &off,
		Packages: []Package{{
			Name: "acme/core",
			Path: "vendor/acme/core",
			Files: []FileMapping{
				{Destination: "a.txt", Source: "a.txt"},
				{Destination: "b.txt", Source: "b.txt", Overwrite: &on},
			},
		}},
	}

	entries, err := m.Resolve(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.False(t, entries[0].Options.Overwrite)
	assert.True(t, entries[1].Options.Overwrite)
	assert.False(t, entries[0].Options.Symlink)
}

func TestResolveUnknownLocation(t *testing.T) {
	m := &Manifest{
		Packages: []Package{{
			Name:  "acme/core",
			Path:  "vendor/acme/core",
			Files: []FileMapping{{Destination: "[web-root]/robots.txt", Source: "robots.txt"}},
		}},
	}

	_, err := m.Resolve(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package acme/core")
	assert.Contains(t, err.Error(), `unknown location "web-root"`)
}
