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

package scaffold

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrSourceUnreadable is matched by errors.Is when the source could not be read.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrDestinationWriteFailed is matched by errors.Is when the destination could not be written or linked.
	ErrDestinationWriteFailed = errors.New("destination write failed")
)

// ❌ IOError is returned for every unrecoverable filesystem failure in Process
type IOError struct {
	Kind        error  // ErrSourceUnreadable or ErrDestinationWriteFailed
	Action      string // "copy" or "symlink"
	Source      string // relative source path
	Destination string // relative destination path
	Err         error  // underlying cause
}

func newIOError(kind error, k Kind, source, destination *FilePath, cause error) *IOError {
	return &IOError{
		Kind:        kind,
		Action:      k.String(),
		Source:      source.RelativePath(),
		Destination: destination.RelativePath(),
		Err:         cause,
	}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s source file %s to %s: %v", e.Action, e.Source, e.Destination, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and errors.As.
func (e *IOError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
