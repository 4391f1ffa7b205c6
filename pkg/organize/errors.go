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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidDirectory means the path is missing or not a directory.
	ErrInvalidDirectory = errors.Base("invalid directory")
	// ErrUnreadableFile means a file could not be opened or fully read.
	ErrUnreadableFile = errors.Base("unreadable file")
	// ErrMoveFailed covers folder creation and rename failures.
	ErrMoveFailed = errors.Base("move failed")
	// ErrDestinationExists means the extension folder already holds a file with the same name.
	ErrDestinationExists = errors.Base("destination exists")
	// ErrFolderIsFile means the extension folder name is taken by something that is not a directory.
	ErrFolderIsFile = errors.Base("folder is not a directory")
)

// ❌ StepError reports the file a pass stopped on.
// It matches both its category (ErrUnreadableFile, ErrMoveFailed) and the
// underlying cause with errors.Is.
type StepError struct {
	Name     string
	Category error
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Name, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Category, e.Err}
}
