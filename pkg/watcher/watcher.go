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

package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📣 Event is a debounced batch of changes to watched files
type Event struct {
	Reason string
	Paths  []string
}

// 👀 Watcher reports changes to a set of files, such as a manifest and its scaffold sources.
// It watches the parent directories so that files replaced by rename are still seen.
type Watcher struct {
	Events chan Event
	Errors chan error

	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]struct{}
}

// 🏭 New creates a watcher that waits for debounce of quiet before sending an event
func New(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Errorf("creating file watcher: %w", err)
	}

	return &Watcher{
		Events:   make(chan Event, 64),
		Errors:   make(chan error, 64),
		watcher:  w,
		debounce: debounce,
		files:    map[string]struct{}{},
		dirs:     map[string]struct{}{},
	}, nil
}

// 📝 Set replaces the watched files with paths
func (w *Watcher) Set(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := map[string]struct{}{}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range w.dirs {
		if _, keep := dirs[dir]; keep {
			continue
		}
		if err := w.watcher.Remove(dir); err != nil {
			lazySend[error](w.Errors, errors.Errorf("removing watch on %s: %w", dir, err))
		}
		delete(w.dirs, dir)
	}

	var errs []error
	for dir := range dirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			// sources of a package that is not installed yet
			errs = append(errs, errors.Errorf("watching %s: %w", dir, err))
			continue
		}
		w.dirs[dir] = struct{}{}
	}

	w.files = files
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Watched returns the watched files, sorted.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func (w *Watcher) isWatched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// 🏃 Start runs the event loop until ctx is done
func (w *Watcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		pending = map[string]struct{}{}
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
			timerCh = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(w.debounce)
	}

	flush := func(reason string) {
		if len(pending) == 0 {
			return
		}
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		clear(pending)

		lazySend(w.Events, Event{Reason: reason, Paths: paths})
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if !w.isWatched(ev.Name) {
				continue
			}
			logger.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("watched file changed")
			pending[filepath.Clean(ev.Name)] = struct{}{}
			resetTimer()

		case <-timerCh:
			timer = nil
			timerCh = nil
			flush(fmt.Sprintf("file change (%s quiet)", w.debounce))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			lazySend[error](w.Errors, errors.Errorf("watch error: %w", err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}

func lazySend[T any](ch chan<- T, value T) {
	select {
	case ch <- value:
	default:
	}
}
