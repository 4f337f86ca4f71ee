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

package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/pkg/log"
	"github.com/walteh/scaffoldrc/pkg/operation"
	"github.com/walteh/scaffoldrc/pkg/status"
	"github.com/walteh/scaffoldrc/pkg/watcher"
)

const watchDebounce = 250 * time.Millisecond

type scaffoldOpts struct {
	*rootOpts
	watch       bool
	workers     int
	projectRoot string
	formatter   status.FileFormatter
}

func newScaffoldCmd(root *rootOpts) *cobra.Command {
	opts := &scaffoldOpts{rootOpts: root, formatter: status.NewDefaultFileFormatter()}

	cmd := &cobra.Command{
		Use:     "scaffold",
		Aliases: []string{"wordpress:scaffold"},
		Short:   "Update the scaffold files",
		Long: `The scaffold command places the scaffold files in their respective
locations according to the layout stipulated in the scaffold manifest.

  scaffoldrc scaffold --config .scaffoldrc.yaml

Only packages allowed to scaffold by the manifest's allowed-packages list
are processed. With --watch the command keeps running and scaffolds again
whenever the manifest or a source file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "scaffold").Logger().WithContext(cmd.Context())

			err := runScaffold(ctx, opts)
			if !opts.watch {
				return err
			}
			if err != nil {
				log.FromContext(ctx).Error(opts.formatter.FormatError(err))
			}
			return watchScaffold(ctx, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "scaffold again when the manifest or a source file changes")
	cmd.Flags().IntVar(&opts.workers, "workers", operation.DefaultWorkers, "concurrent source checks")
	cmd.Flags().StringVar(&opts.projectRoot, "project-root", "", "project root (defaults to the manifest directory)")

	return cmd
}

func (o *scaffoldOpts) operationOptions() operation.Options {
	return operation.Options{
		Workers:     o.workers,
		Formatter:   o.formatter,
		ProjectRoot: o.projectRoot,
	}
}

// runScaffold runs one scaffold pass and prints its summary
func runScaffold(ctx context.Context, opts *scaffoldOpts) error {
	logger := log.FromContext(ctx)
	logger.Header("Scaffolding from " + opts.configFile)

	summary, err := operation.Scaffold(ctx, opts.configFile, opts.operationOptions())
	if err != nil {
		return err
	}

	logger.LogNewline()
	if summary.Total() == 0 {
		logger.Warning("the manifest lists no scaffold files")
		return nil
	}
	logger.Success(summary.String())
	return nil
}

// watchScaffold scaffolds again on every watcher event until ctx is done
func watchScaffold(ctx context.Context, out io.Writer, opts *scaffoldOpts) error {
	logger := log.FromContext(ctx)

	w, err := watcher.New(watchDebounce)
	if err != nil {
		return err
	}
	defer w.Close()

	refresh := func() {
		if err := w.Set(watchPaths(ctx, opts)...); err != nil {
			logger.Warningf("some paths cannot be watched: %v", err)
		}
	}
	refresh()
	w.Start(ctx)

	pterm.Info.WithWriter(out).Printfln("Watching %d files, press ctrl+c to stop", len(w.Watched()))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events:
			zerolog.Ctx(ctx).Debug().Str("reason", ev.Reason).Msg("change detected")
			logger.Infof("Changed: %s", strings.Join(displayPaths(ev.Paths), ", "))
			if err := runScaffold(ctx, opts); err != nil {
				// keep watching so the next fix is picked up
				logger.Error(opts.formatter.FormatError(err))
			}
			refresh()
		case err := <-w.Errors:
			logger.Warningf("watcher: %v", err)
		}
	}
}

// watchPaths lists the manifest and every source it currently resolves to
func watchPaths(ctx context.Context, opts *scaffoldOpts) []string {
	paths := []string{opts.configFile}

	_, entries, err := operation.Plan(ctx, opts.configFile, opts.operationOptions())
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("watching manifest only")
		return paths
	}
	for _, e := range entries {
		paths = append(paths, e.Source.FullPath())
	}
	return paths
}

// displayPaths reduces changed paths to their file names
func displayPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, filepath.Base(p))
	}
	return out
}
