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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

// stubPrompt replaces the terminal check and prompt for the duration of a test
func stubPrompt(t *testing.T, terminal bool, answer string) {
	t.Helper()
	origTerminal, origPrompt := stdinIsTerminal, promptDirectory
	stdinIsTerminal = func() bool { return terminal }
	promptDirectory = func() (string, error) { return answer, nil }
	t.Cleanup(func() {
		stdinIsTerminal, promptDirectory = origTerminal, origPrompt
	})
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		args       func(dir string) []string
		setup      func(t *testing.T, dir string)
		wantCode   int
		wantStdout []string
		wantStderr []string
		validate   func(t *testing.T, dir string)
	}{
		{
			name:  "moves_files",
			files: map[string]string{"a.txt": "hello", "b.jpg": "binary"},
			args:  func(dir string) []string { return []string{"--no-color", dir} },
			wantStdout: []string{
				"a.txt", "txt/", "MOVED",
				"b.jpg", "jpg/",
				"directory organized",
			},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "txt", "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "jpg", "b.jpg"))
			},
		},
		{
			name:  "dry_run",
			files: map[string]string{"a.txt": "hello", "b.jpg": "binary"},
			args:  func(dir string) []string { return []string{"--no-color", "--dry-run", dir} },
			wantStdout: []string{
				"WOULD MOVE",
				"would move",
				"nothing was moved",
			},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "b.jpg"))
				assert.NoDirExists(t, filepath.Join(dir, "txt"))
				assert.NoDirExists(t, filepath.Join(dir, "jpg"))
			},
		},
		{
			name:       "duplicates_stay",
			files:      map[string]string{"a.txt": "same", "copy_of_a.txt": "same"},
			args:       func(dir string) []string { return []string{"--no-color", dir} },
			wantStdout: []string{"copy_of_a.txt", "= a.txt", "DUPLICATE", "1 duplicate files left in place"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "txt", "a.txt"))
				assert.FileExists(t, filepath.Join(dir, "copy_of_a.txt"))
			},
		},
		{
			name:       "invalid_directory",
			args:       func(dir string) []string { return []string{"--no-color", filepath.Join(dir, "missing")} },
			wantCode:   1,
			wantStdout: []string{"INVALID DIR"},
		},
		{
			name:       "ignore_flag",
			files:      map[string]string{"a.txt": "hello", "video.part": "partial"},
			args:       func(dir string) []string { return []string{"--no-color", "--ignore", "*.part", dir} },
			wantStdout: []string{"ignoring files matching *.part"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "video.part"))
				assert.NoDirExists(t, filepath.Join(dir, "part"))
			},
		},
		{
			name:       "bad_chunk_size",
			files:      map[string]string{"a.txt": "hello"},
			args:       func(dir string) []string { return []string{"--no-color", "--chunk-size=-1", dir} },
			wantCode:   1,
			wantStderr: []string{"chunk_size must be positive"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name:       "zero_chunk_size_uses_default",
			files:      map[string]string{"a.txt": "hello"},
			args:       func(dir string) []string { return []string{"--no-color", "--chunk-size=0", dir} },
			wantStdout: []string{"MOVED", "directory organized (1 moved"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "txt", "a.txt"))
			},
		},
		{
			name:       "huge_chunk_size",
			files:      map[string]string{"a.txt": "hello"},
			args:       func(dir string) []string { return []string{"--no-color", "--chunk-size=4611686018427387904", dir} },
			wantCode:   1,
			wantStderr: []string{"chunk_size must be at most"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "a.txt"))
			},
		},
		{
			name:  "config_file",
			files: map[string]string{"README": "docs"},
			setup: func(t *testing.T, dir string) {
				cfg := "directory: " + dir + "\ndry_run: true\n"
				require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "fileorg.yaml"), []byte(cfg), 0644))
			},
			args: func(dir string) []string {
				return []string{"--no-color", "--config", filepath.Join(filepath.Dir(dir), "fileorg.yaml")}
			},
			wantStdout: []string{"README", "others/", "WOULD MOVE"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "README"))
			},
		},
		{
			name:  "flag_overrides_config",
			files: map[string]string{"README": "docs"},
			setup: func(t *testing.T, dir string) {
				cfg := "directory: " + dir + "\ndry_run: true\n"
				require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "fileorg.yaml"), []byte(cfg), 0644))
			},
			args: func(dir string) []string {
				return []string{"--no-color", "--dry-run=false", "-c", filepath.Join(filepath.Dir(dir), "fileorg.yaml")}
			},
			wantStdout: []string{"MOVED"},
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "others", "README"))
			},
		},
		{
			name:       "bad_config_file",
			args:       func(dir string) []string { return []string{"--config", filepath.Join(dir, "missing.yaml"), dir} },
			wantCode:   1,
			wantStderr: []string{"loading config"},
		},
		{
			name:       "no_directory_without_terminal",
			setup:      func(t *testing.T, dir string) { stubPrompt(t, false, "") },
			args:       func(dir string) []string { return []string{"--no-color"} },
			wantCode:   1,
			wantStderr: []string{"no directory given"},
		},
		{
			name:  "prompts_for_directory",
			files: map[string]string{"a.txt": "hello"},
			setup: func(t *testing.T, dir string) { stubPrompt(t, true, "  "+dir+"  ") },
			args:  func(dir string) []string { return []string{"--no-color"} },
			validate: func(t *testing.T, dir string) {
				assert.FileExists(t, filepath.Join(dir, "txt", "a.txt"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the directory lives one level down so config files can sit beside it
			dir := filepath.Join(t.TempDir(), "inbox")
			require.NoError(t, os.Mkdir(dir, 0755))
			writeTree(t, dir, tt.files)
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tt.args(dir), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())
			for _, want := range tt.wantStdout {
				assert.Contains(t, stdout.String(), want)
			}
			for _, want := range tt.wantStderr {
				assert.Contains(t, stderr.String(), want)
			}
			if tt.validate != nil {
				tt.validate(t, dir)
			}
		})
	}
}

func TestRunInvalidDirectoryReportsOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--no-color", filepath.Join(t.TempDir(), "nope")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("INVALID DIR")))
	assert.NotContains(t, stderr.String(), "❌", "the notification is the only report")
}

func TestVersionCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var stdout bytes.Buffer
		code := run(context.Background(), []string{"version"}, &stdout, &bytes.Buffer{})
		require.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "fileorg version info")
	})

	t.Run("json", func(t *testing.T) {
		var stdout bytes.Buffer
		code := run(context.Background(), []string{"version", "--json"}, &stdout, &bytes.Buffer{})
		require.Equal(t, 0, code)

		var info VersionInfo
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &info))
		assert.NotEmpty(t, info.Version)
		assert.NotEmpty(t, info.GoVersion)
	})
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion(&VersionInfo{Version: "v1.2.3", Revision: "abc", Modified: true, GoVersion: "go1.23", Platform: "linux/amd64"})
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc (modified)")
	assert.Contains(t, out, "linux/amd64")
}
