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

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fileorg/cmd/fileorg/opts"
	"github.com/walteh/fileorg/pkg/config"
	"github.com/walteh/fileorg/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the values bound to the root command flags
type rootFlags struct {
	configFile string
	dryRun     bool
	debug      bool
	noColor    bool
	chunkSize  int
	ignore     []string
}

// newRootCmd builds the fileorg command tree
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "fileorg [directory]",
		Short: "Sort the files of a directory into folders named after their extension",
		Long: `fileorg moves every file directly inside a directory into a subfolder
named after its lowercase extension (files without one go to "others").
It will:
1. Skip subdirectories and symlinks (no recursion)
2. Leave files whose content duplicates an earlier file in place
3. With --dry-run, only report what would move`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				color.NoColor = true
				pterm.DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)

			o, err := newRootOpts(ctx, cmd, flags, args)
			if err != nil {
				return err
			}

			mirror := zerolog.Nop()
			if flags.debug {
				mirror = zerolog.Ctx(ctx).With().Str("component", "notify").Logger()
			}
			ctx = log.NewContext(ctx, log.NewWithZerolog(cmd.OutOrStdout(), mirror))

			return runOrganize(ctx, o)
		},
	}

	addRootFlags(cmd, flags)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the root command flags
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.json, .yaml, .yml or .hcl)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report planned moves without touching the filesystem")
	cmd.Flags().IntVar(&flags.chunkSize, "chunk-size", 0, "bytes read per hashing step, 0 uses 4096 (max 64 MiB)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob pattern of file names to leave alone (repeatable)")
}

// setupLogging configures zerolog based on flags and tags the context with a pass id
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Str("pass_id", uuid.NewString()).
		Logger()

	return logger.WithContext(ctx)
}

// newRootOpts resolves config file, flags and directory into RootOpts
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, args []string) (*opts.RootOpts, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.LoadConfig(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = flags.chunkSize
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	}
	if len(args) > 0 {
		cfg.Directory = args[0]
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}

	dir, err := resolveDirectory(ctx, cfg.Directory)
	if err != nil {
		return nil, err
	}
	cfg.Directory = dir

	return &opts.RootOpts{Config: cfg}, nil
}
