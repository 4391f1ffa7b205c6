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
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// stdinIsTerminal reports whether a prompt can be shown
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// promptDirectory asks the user for the directory to organize
	promptDirectory = func() (string, error) {
		return pterm.DefaultInteractiveTextInput.Show("Enter the directory path to organize")
	}
)

// resolveDirectory turns the configured directory into an absolute path,
// prompting for one when nothing was given
func resolveDirectory(ctx context.Context, dir string) (string, error) {
	dir = strings.TrimSpace(dir)

	if dir == "" {
		if !stdinIsTerminal() {
			return "", errors.Errorf("no directory given and stdin is not a terminal")
		}
		answer, err := promptDirectory()
		if err != nil {
			return "", errors.Errorf("prompting for directory: %w", err)
		}
		dir = strings.TrimSpace(answer)
		if dir == "" {
			return "", errors.Errorf("no directory given")
		}
	}

	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Errorf("expanding ~: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("getting absolute path: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("directory", abs).Msg("resolved directory")
	return abs, nil
}
