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

/*
Package organize sorts the files of a single directory into per-extension folders.

🎯 Purpose:
- Classifies each regular file by its lowercase extension
- Skips files whose content was already seen earlier in the same pass
- Moves files, or only reports what would move in dry-run mode

🔄 Flow:
1. Check the target is an existing directory
2. Enumerate its immediate entries once (no recursion)
3. Hash each regular file and consult the pass registry
4. Move or skip, then notify the Sink exactly once

🤝 Interfaces:
- Sink: receives one Notification per decision or failure
- Hasher: content digests, see package hasher
- FileSystem: the few filesystem calls a pass makes

⚠️ Failure policy:
A pass stops at the first unreadable file or failed move. Files moved before
the failure stay where they are; nothing is rolled back.

🔍 Example:

	org, err := organize.New(organize.Options{Sink: logger})
	if err != nil {
		return err
	}
	decisions, err := org.Organize(ctx, "/home/me/Downloads", true)
*/
package organize
