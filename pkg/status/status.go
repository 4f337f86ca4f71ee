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

package status

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/scaffold"
)

// 📈 Summary collects scaffold results for one run
type Summary struct {
	formatter FileFormatter

	mu      sync.RWMutex
	results []scaffold.Result
	applied int
	skipped int
}

// 🏭 NewSummary creates an empty summary
func NewSummary(formatter FileFormatter) *Summary {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Summary{formatter: formatter}
}

// Track records a result and logs it at debug level.
func (s *Summary) Track(ctx context.Context, res scaffold.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, res)
	if res.Applied() {
		s.applied++
	} else {
		s.skipped++
	}

	dest := ""
	if res.Destination() != nil {
		dest = res.Destination().RelativePath()
	}
	zerolog.Ctx(ctx).Debug().
		Str("destination", dest).
		Bool("applied", res.Applied()).
		Msg(s.formatter.FormatResult(res))
}

// Applied returns how many files were copied or linked.
func (s *Summary) Applied() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied
}

// Skipped returns how many files were left alone because they already existed.
func (s *Summary) Skipped() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.skipped
}

// Total returns how many files were processed.
func (s *Summary) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// String formats the summary with the summary's formatter.
func (s *Summary) String() string {
	return s.formatter.FormatSummary(s.Applied(), s.Skipped())
}
