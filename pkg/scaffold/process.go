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
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/scaffoldrc/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Process places one scaffold file at destination by copying or linking source.
//
// If overwrite is off and something already exists at destination, nothing is
// touched and the result is not applied. Otherwise the destination is removed,
// its parent directories are created and the file is copied or linked.
func Process(ctx context.Context, source, destination *FilePath, opts Options) (Result, error) {
	logger := log.FromContext(ctx)
	destPath := destination.FullPath()

	if !opts.Overwrite && exists(destPath) {
		logger.LogScaffold(ctx, log.ScaffoldLine{
			Action:      log.ActionSkip,
			Destination: destination.RelativePath(),
		})
		return Result{destination: destination, applied: false}, nil
	}

	kind := opts.Kind()
	zerolog.Ctx(ctx).Debug().
		Str("source", source.FullPath()).
		Str("destination", destPath).
		Stringer("kind", kind).
		Msg("placing scaffold file")

	if err := os.RemoveAll(destPath); err != nil {
		return Result{}, newIOError(ErrDestinationWriteFailed, kind, source, destination,
			errors.Errorf("removing existing destination: %w", err))
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return Result{}, newIOError(ErrDestinationWriteFailed, kind, source, destination,
			errors.Errorf("creating parent directories: %w", err))
	}

	var action log.Action
	switch kind {
	case KindSymlink:
		if err := symlinkFile(source, destination); err != nil {
			return Result{}, err
		}
		action = log.ActionLink
	default:
		if err := copyFile(source, destination); err != nil {
			return Result{}, err
		}
		action = log.ActionCopy
	}

	logger.LogScaffold(ctx, log.ScaffoldLine{
		Action:      action,
		Destination: destination.RelativePath(),
		Source:      source.RelativePath(),
	})

	return Result{destination: destination, applied: true}, nil
}

// exists follows symlinks, so a dangling link counts as missing
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// 🔗 symlinkFile links destination to source with a path relative to the destination's directory
func symlinkFile(source, destination *FilePath) error {
	target := relativeTarget(source.FullPath(), destination.FullPath())

	if err := os.Symlink(target, destination.FullPath()); err != nil {
		return newIOError(ErrDestinationWriteFailed, KindSymlink, source, destination,
			errors.Errorf("creating symlink: %w", err))
	}
	return nil
}

func relativeTarget(source, destination string) string {
	rel, err := filepath.Rel(filepath.Dir(destination), source)
	if err != nil {
		return source
	}
	return rel
}

// 📦 copyFile writes the full source content to destination through a temp file and rename
func copyFile(source, destination *FilePath) error {
	content, mode, err := readSource(source.FullPath())
	if err != nil {
		return newIOError(ErrSourceUnreadable, KindCopy, source, destination, err)
	}

	if err := writeFileAtomic(destination.FullPath(), content, mode); err != nil {
		return newIOError(ErrDestinationWriteFailed, KindCopy, source, destination, err)
	}
	return nil
}

func readSource(path string) ([]byte, os.FileMode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Errorf("opening source: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Errorf("reading source info: %w", err)
	}
	if info.IsDir() {
		return nil, 0, errors.Errorf("source is a directory")
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, errors.Errorf("reading source: %w", err)
	}
	return content, info.Mode().Perm(), nil
}

func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".scaffold-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	n, err := tmp.Write(content)
	if err == nil && n != len(content) {
		err = io.ErrShortWrite
	}
	if err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
