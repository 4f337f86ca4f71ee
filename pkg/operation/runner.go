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
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/scaffold"
	"github.com/walteh/scaffoldrc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the concurrent source checks done before a run.
const DefaultWorkers = 8

// 🏃 Runner places scaffold entries one after another
type Runner struct {
	workers   int
	formatter status.FileFormatter
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = status.NewDefaultFileFormatter()
	}
	return &Runner{
		workers:   workers,
		formatter: formatter,
	}
}

// 🏃 Run checks every needed source, then processes entries sequentially in order.
// The first failure stops the run; files placed before it stay in place.
func (r *Runner) Run(ctx context.Context, entries []scaffold.Entry) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	summary := status.NewSummary(r.formatter)

	if err := r.preflight(ctx, entries); err != nil {
		return summary, errors.Errorf("checking sources: %w", err)
	}

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, errors.Errorf("scaffold cancelled: %w", err)
		}

		res, err := scaffold.Process(ctx, entry.Source, entry.Destination, entry.Options)
		if err != nil {
			return summary, errors.Errorf("scaffolding %s for package %s: %w",
				entry.Destination.RelativePath(), entry.Package, err)
		}
		summary.Track(ctx, res)

		logger.Debug().Msg(r.formatter.FormatProgress(i+1, len(entries)))
	}

	return summary, nil
}

// 🔍 preflight stats every source that Process would read, without touching the project
func (r *Runner) preflight(ctx context.Context, entries []scaffold.Entry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, entry := range entries {
		if willSkip(entry) {
			continue
		}

		entry := entry
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			info, err := os.Stat(entry.Source.FullPath())
			if err != nil {
				return errors.Errorf("package %s: source %s: %w", entry.Package, entry.Source.RelativePath(), err)
			}
			if info.IsDir() {
				return errors.Errorf("package %s: source %s is a directory", entry.Package, entry.Source.RelativePath())
			}
			return nil
		})
	}

	return g.Wait()
}

func willSkip(entry scaffold.Entry) bool {
	if entry.Options.Overwrite {
		return false
	}
	_, err := os.Stat(entry.Destination.FullPath())
	return err == nil
}
