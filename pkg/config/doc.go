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
Package config loads optional fileorg configuration files.

🎯 Purpose:
- Reads JSON, YAML or HCL files into a single Config
- Fills defaults and validates values

🔄 Flow:
1. Pick a Parser by file extension
2. Parse the bytes
3. Apply defaults (chunk size)
4. Validate (positive chunk size, well-formed ignore patterns)

📝 Example (.fileorg.yaml):

	directory: ~/Downloads
	dry_run: true
	chunk_size: 8192
	ignore:
	  - "*.part"
	  - ".DS_Store"

Command line flags always win over file values; merging happens in the CLI.
*/
package config
