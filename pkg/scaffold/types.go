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

// 🔀 Kind is how bytes reach the destination
type Kind int

const (
	KindCopy Kind = iota
	KindSymlink
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindSymlink:
		return "symlink"
	default:
		return "copy"
	}
}

// 🔧 Options controls a single scaffold file placement
type Options struct {
	Overwrite bool // replace whatever is already at the destination
	Symlink   bool // link to the source instead of copying it
}

// Kind returns the placement kind selected by the options.
func (o Options) Kind() Kind {
	if o.Symlink {
		return KindSymlink
	}
	return KindCopy
}

// 📊 Result is the outcome of one Process call
type Result struct {
	destination *FilePath
	applied     bool
}

// Destination returns the destination that was processed.
func (r Result) Destination() *FilePath { return r.destination }

// Applied is false when the file was skipped because it already existed.
func (r Result) Applied() bool { return r.applied }

// 📦 Entry is one resolved scaffold file, ready to process
type Entry struct {
	Package     string
	Source      *FilePath
	Destination *FilePath
	Options     Options
}
