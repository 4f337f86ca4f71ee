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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffoldrc/pkg/log"
)

// rootOpts holds the flags shared by every command
type rootOpts struct {
	configFile string
	debug      bool
	logOutput  io.Writer
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{logOutput: os.Stderr}

	cmd := &cobra.Command{
		Use:   "scaffoldrc",
		Short: "Place scaffold files from installed packages into a project",
		Long: `scaffoldrc copies or links files that installed packages declare in a
scaffold manifest into the project tree, such as default configuration
files, web server rules or entrypoints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := setupLogging(cmd, opts)
			cmd.SetContext(ctx)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", ".scaffoldrc.yaml", "scaffold manifest path")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(
		newScaffoldCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// setupLogging puts a zerolog logger and a console logger in the command context
func setupLogging(cmd *cobra.Command, opts *rootOpts) context.Context {
	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: opts.logOutput, NoColor: true}).Level(level).With().Timestamp().Logger()
	ctx := zlog.WithContext(cmd.Context())
	return log.NewContext(ctx, log.NewWithZerolog(cmd.OutOrStdout(), zlog))
}
