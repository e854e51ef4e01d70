// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"fillmore-labs.com/redundancy/internal/report"
)

// DefaultDebounce is how long the watcher waits for more changes before
// processing them.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-runs the analysis of changed files below a set of directories.
type Watcher struct {
	options  *Options
	matcher  matcher
	roots    []string
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the directories roots. Watches are active
// when it returns.
func NewWatcher(roots []string, o *Options, debounce time.Duration) (*Watcher, error) {
	m, err := newMatcher(o.Include, o.Exclude)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		options:  o,
		matcher:  m,
		debounce: debounce,
		logger:   o.logger(),
		watcher:  fsw,
	}

	for _, dir := range roots {
		root, err := filepath.Abs(dir)
		if err == nil {
			err = w.addRecursive(root, root)
		}

		if err != nil {
			_ = fsw.Close()

			return nil, err
		}

		w.roots = append(w.roots, root)
	}

	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error { return w.watcher.Close() }

// Watch processes changed files until ctx is done, calling handle with the
// results of every batch of changes. An error returned by handle stops
// watching.
func (w *Watcher) Watch(ctx context.Context, handle func([]report.File) error) error {
	defer w.watcher.Close()

	w.logger.LogAttrs(ctx, slog.LevelInfo, "File watcher started",
		slog.Any("roots", w.roots),
		slog.Duration("debounce", w.debounce))

	pending := make(map[string]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if w.handleEvent(event, pending) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.LogAttrs(ctx, slog.LevelWarn, "Watcher error", slog.Any("error", err))

		case <-timer.C:
			files := slices.Sorted(maps.Keys(pending))
			clear(pending)

			if err := w.flush(ctx, files, handle); err != nil {
				return err
			}
		}
	}
}

// handleEvent records changed files and reports whether processing is due.
func (w *Watcher) handleEvent(event fsnotify.Event, pending map[string]struct{}) bool {
	path := event.Name

	root, rel, ok := w.locate(path)
	if !ok {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.matcher.skipDir(rel, info.Name()) {
				if err := w.addRecursive(root, path); err != nil {
					w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
				}
			}

			return false
		}
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) || !w.matcher.Match(rel) {
		return false
	}

	w.logger.Debug("File change detected", "path", path, "op", event.Op.String())

	pending[path] = struct{}{}

	return true
}

func (w *Watcher) flush(ctx context.Context, files []string, handle func([]report.File) error) error {
	files = slices.DeleteFunc(files, func(path string) bool {
		_, err := os.Stat(path)

		return err != nil
	})

	if len(files) == 0 {
		return nil
	}

	results, err := Run(ctx, files, w.options)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return err
	}

	return handle(results)
}

// locate returns the watched root containing path and the relative path.
func (w *Watcher) locate(path string) (string, string, bool) {
	for _, root := range w.roots {
		rel, err := relative(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}

		return root, rel, true
	}

	return "", "", false
}

func (w *Watcher) addRecursive(root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != root {
			rel, err := relative(root, path)
			if err != nil {
				return err
			}

			if w.matcher.skipDir(rel, d.Name()) {
				return filepath.SkipDir
			}
		}

		if err := w.watcher.Add(path); err != nil {
			return err
		}

		w.logger.Debug("Watching directory", "path", path)

		return nil
	})
}
