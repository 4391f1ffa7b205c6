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

package organize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionKey(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "simple", filename: "a.txt", want: "txt"},
		{name: "uppercase", filename: "PHOTO.JPG", want: "jpg"},
		{name: "mixed_case", filename: "Report.PdF", want: "pdf"},
		{name: "multiple_dots", filename: "archive.tar.gz", want: "gz"},
		{name: "no_extension", filename: "README", want: OthersKey},
		{name: "trailing_dot", filename: "notes.", want: OthersKey},
		{name: "dotfile", filename: ".bashrc", want: OthersKey},
		{name: "dotfile_with_extension", filename: ".config.yaml", want: "yaml"},
		{name: "double_leading_dot", filename: "..hidden", want: "hidden"},
		{name: "only_dot", filename: ".", want: OthersKey},
		{name: "spaces", filename: "my file.Mp3", want: "mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtensionKey(tt.filename)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ExtensionKey(tt.filename), "key should be deterministic")
		})
	}
}
