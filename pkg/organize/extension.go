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

import "strings"

// OthersKey is the folder for files without an extension.
const OthersKey = "others"

// 🏷️ ExtensionKey returns the destination folder name for a file name.
//
// The key is the text after the last '.', lowercased. Names without a dot,
// names whose only dot leads (".bashrc") and names ending in a dot map to
// OthersKey.
func ExtensionKey(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return OthersKey
	}
	return strings.ToLower(name[idx+1:])
}
