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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name        string
		input       string
		terminal    bool
		answer      string
		want        string
		errContains string
	}{
		{name: "absolute", input: "/srv/inbox", want: "/srv/inbox"},
		{name: "trims_spaces", input: "  /srv/inbox  ", want: "/srv/inbox"},
		{name: "cleans_path", input: "/srv/./inbox/", want: "/srv/inbox"},
		{name: "home", input: "~", want: home},
		{name: "home_subdir", input: "~/Downloads", want: filepath.Join(home, "Downloads")},
		{name: "prompted", terminal: true, answer: "/from/prompt\n", want: "/from/prompt"},
		{name: "empty_prompt_answer", terminal: true, answer: "   ", errContains: "no directory given"},
		{name: "no_terminal", errContains: "stdin is not a terminal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPrompt(t, tt.terminal, tt.answer)

			got, err := resolveDirectory(context.Background(), tt.input)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
