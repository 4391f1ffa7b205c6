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

// 🗂️ Registry maps content digests to the first file seen with that content.
// It lives for a single pass and is never persisted.
type Registry struct {
	seen map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]string)}
}

// Lookup returns the original file name recorded for digest.
func (r *Registry) Lookup(digest string) (string, bool) {
	name, ok := r.seen[digest]
	return name, ok
}

// Record stores digest for name unless the digest is already known.
// It reports whether name became the original.
func (r *Registry) Record(digest, name string) bool {
	if _, ok := r.seen[digest]; ok {
		return false
	}
	r.seen[digest] = name
	return true
}

// Len returns the number of distinct digests seen.
func (r *Registry) Len() int {
	return len(r.seen)
}
