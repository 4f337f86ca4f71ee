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

package status

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scaffoldrc/pkg/scaffold"
)

// 🧪 processResult runs a real scaffold operation to get a Result
func processResult(t *testing.T, ctx context.Context, root, dest string, overwrite bool) scaffold.Result {
	t.Helper()

	srcPath := filepath.Join(root, "pkg", "file.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(srcPath), 0o755))
	require.NoError(t, os.WriteFile(srcPath, []byte("content"), 0o644))

	src, err := scaffold.NewFilePath(scaffold.RoleSource, "acme/core", root, srcPath)
	require.NoError(t, err)
	dst, err := scaffold.NewFilePath(scaffold.RoleDestination, "acme/core", root, dest)
	require.NoError(t, err)

	res, err := scaffold.Process(ctx, src, dst, scaffold.Options{Overwrite: overwrite})
	require.NoError(t, err)
	return res
}

func TestSummary(t *testing.T) {
	root := t.TempDir()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel).WithContext(context.Background())

	summary := NewSummary(nil)
	summary.Track(ctx, processResult(t, ctx, root, "out/a.txt", true))
	summary.Track(ctx, processResult(t, ctx, root, "out/b.txt", true))
	summary.Track(ctx, processResult(t, ctx, root, "out/a.txt", false))

	assert.Equal(t, 3, summary.Total())
	assert.Equal(t, 2, summary.Applied())
	assert.Equal(t, 1, summary.Skipped())
	assert.Equal(t, "Scaffolded 2 of 3 files (1 skipped)", summary.String())
}

func TestDefaultFileFormatter(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()
	f := NewDefaultFileFormatter()

	applied := processResult(t, ctx, root, "web/robots.txt", true)
	skipped := processResult(t, ctx, root, "web/robots.txt", false)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "applied_result", got: f.FormatResult(applied), want: "✨ Scaffolded web/robots.txt"},
		{name: "skipped_result", got: f.FormatResult(skipped), want: "👍 Kept web/robots.txt"},
		{name: "zero_result", got: f.FormatResult(scaffold.Result{}), want: "👍 Kept "},
		{name: "summary_single", got: f.FormatSummary(1, 0), want: "Scaffolded 1 of 1 file (0 skipped)"},
		{name: "summary_empty", got: f.FormatSummary(0, 0), want: "Scaffolded 0 of 0 files (0 skipped)"},
		{name: "progress_partial", got: f.FormatProgress(1, 4), want: "⏳ Progress: 1/4 (25%)"},
		{name: "progress_done", got: f.FormatProgress(4, 4), want: "✅ Progress: 4/4 (100%)"},
		{name: "progress_zero_total", got: f.FormatProgress(0, 0), want: "✅ Progress: 0/0 (0%)"},
		{name: "error", got: f.FormatError(fmt.Errorf("boom")), want: "Error: boom"},
		{name: "nil_error", got: f.FormatError(nil), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
