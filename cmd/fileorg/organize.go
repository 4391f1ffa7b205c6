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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/fileorg/cmd/fileorg/opts"
	"github.com/walteh/fileorg/pkg/hasher"
	"github.com/walteh/fileorg/pkg/log"
	"github.com/walteh/fileorg/pkg/organize"
	"gitlab.com/tozd/go/errors"
)

// reportedError marks a failure the user has already seen as a notification
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// runOrganize runs one pass with the resolved options and prints its summary
func runOrganize(ctx context.Context, o *opts.RootOpts) error {
	cfg := o.Config
	logger := log.FromContext(ctx)
	h := hasher.New(cfg.ChunkSize)

	org, err := organize.New(organize.Options{
		Sink:   logger,
		Hasher: h,
		Ignore: cfg.Ignore,
	})
	if err != nil {
		return errors.Errorf("creating organizer: %w", err)
	}

	if cfg.DryRun {
		logger.Header("dry run of " + cfg.Directory)
	} else {
		logger.Header("organizing " + cfg.Directory)
	}
	if len(cfg.Ignore) > 0 {
		logger.Infof("ignoring files matching %s", strings.Join(cfg.Ignore, ", "))
	}

	zerolog.Ctx(ctx).Debug().
		Str("directory", cfg.Directory).
		Bool("dry_run", cfg.DryRun).
		Int("chunk_size", h.ChunkSize()).
		Strs("ignore", cfg.Ignore).
		Msg("starting organize pass")

	decisions, passErr := org.Organize(ctx, cfg.Directory, cfg.DryRun)
	if errors.Is(passErr, organize.ErrInvalidDirectory) {
		return &reportedError{err: passErr}
	}

	summary := organize.Summarize(decisions)
	if err := logger.Summary(summary, cfg.DryRun); err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}

	if n := logger.Count(organize.KindDuplicate); n > 0 {
		logger.Warningf("%d duplicate files left in place", n)
	}

	if passErr != nil {
		logger.Errorf("pass stopped after %d files, files already moved were left in place", summary.Total())
		return &reportedError{err: passErr}
	}

	if cfg.DryRun {
		logger.Successf("dry run complete, nothing was moved (%s)", summary)
	} else {
		logger.Successf("directory organized (%s)", summary)
	}
	return nil
}
