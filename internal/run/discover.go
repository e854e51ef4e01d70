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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover returns the files named by paths, sorted and without duplicates.
// Directories are searched recursively for files matching an include and no
// exclude pattern. Files named explicitly are always included.
func Discover(paths, include, exclude []string) ([]string, error) {
	m, err := newMatcher(include, exclude)
	if err != nil {
		return nil, err
	}

	var (
		files []string
		seen  = make(map[string]struct{})
	)

	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := relative(root, path)
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && m.skipDir(rel, d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if m.Match(rel) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return files, nil
}

// matcher selects files by slash separated paths relative to a search root.
type matcher struct {
	include, exclude []string
}

func newMatcher(include, exclude []string) (matcher, error) {
	for _, pattern := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return matcher{}, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}
	}

	return matcher{include: include, exclude: exclude}, nil
}

// Match reports whether the file at rel is analyzed.
func (m matcher) Match(rel string) bool {
	return matchAny(m.include, rel) && !matchAny(m.exclude, rel)
}

func (m matcher) skipDir(rel, name string) bool {
	return strings.HasPrefix(name, ".") || matchAny(m.exclude, rel+"/")
}

func matchAny(patterns []string, rel string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)

		return ok
	})
}

func relative(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}
