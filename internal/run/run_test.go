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

package run_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/redundancy/internal/report"
	. "fillmore-labs.com/redundancy/internal/run"
)

const source = `class Test
{
    void Method()
    {
        bool f = false;
        f |= true;
    }
}
`

const clean = `class Clean
{
    void Method() { }
}
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.cs":       clean,
		"sub/b.cs":   clean,
		"bin/c.cs":   clean,
		"obj/d.cs":   clean,
		".git/e.cs":  clean,
		"notes.txt":  "",
		"extra.cs.x": clean,
	})

	o := DefaultOptions()

	files, err := Discover([]string{dir, filepath.Join(dir, "extra.cs.x"), filepath.Join(dir, "a.cs")}, o.Include, o.Exclude)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.cs"),
		filepath.Join(dir, "extra.cs.x"),
		filepath.Join(dir, "sub", "b.cs"),
	}
	assert.Equal(t, want, files)
}

func TestDiscoverErrors(t *testing.T) {
	t.Parallel()

	_, err := Discover([]string{t.TempDir()}, []string{"[*.cs"}, nil)
	require.ErrorIs(t, err, doublestar.ErrBadPattern)

	_, err = Discover([]string{filepath.Join(t.TempDir(), "missing")}, []string{"**/*.cs"}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"b.cs": source, "a.cs": clean})

	files := []string{
		filepath.Join(dir, "b.cs"),
		filepath.Join(dir, "missing.cs"),
		filepath.Join(dir, "a.cs"),
	}

	o := DefaultOptions()
	o.Jobs = 2

	results, err := Run(t.Context(), files, o)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, filepath.Join(dir, "a.cs"), results[0].Path)
	assert.NoError(t, results[0].Err)
	assert.Empty(t, results[0].Findings)

	assert.Equal(t, filepath.Join(dir, "b.cs"), results[1].Path)
	require.Len(t, results[1].Findings, 1)
	assert.Equal(t, "RD0001", results[1].Findings[0].Rule.ID)
	assert.Nil(t, results[1].Fixed)

	assert.ErrorIs(t, results[2].Err, os.ErrNotExist)
}

func TestRunFix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.cs": source})
	path := filepath.Join(dir, "a.cs")

	o := DefaultOptions()
	o.Fix = true

	results, err := Run(t.Context(), []string{path}, o)
	require.NoError(t, err)
	require.Len(t, results, 1)

	f := results[0]
	require.NoError(t, f.Err)
	assert.Equal(t, 1, f.Applied)
	assert.True(t, f.Changed())
	assert.Equal(t, strings.Replace(source, "f |= true", "f = true", 1), f.Fixed.Text())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source, string(content), "Fix alone must not write")

	o.Write = true

	_, err = Run(t.Context(), []string{path}, o)
	require.NoError(t, err)

	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Fixed.Text(), string(content))
}

func TestSourceSyntaxErrors(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.Fix = true

	src := strings.Replace(source, "bool f = false;", "bool f = false", 1)

	f := o.Source(t.Context(), "Broken.cs", []byte(src))
	require.NoError(t, f.Err)
	assert.Nil(t, f.Fixed)
	assert.Equal(t, src, f.Tree.Text())
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.cs": source})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Run(ctx, []string{filepath.Join(dir, "a.cs")}, DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.cs": clean})

	w, err := NewWatcher([]string{dir}, DefaultOptions(), 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	batches := make(chan []report.File, 10)
	done := make(chan error, 1)

	go func() {
		done <- w.Watch(ctx, func(files []report.File) error {
			batches <- files

			return nil
		})
	}()

	writeFiles(t, dir, map[string]string{"notes.txt": "ignored", "sub/b.cs": clean})
	writeFiles(t, dir, map[string]string{"a.cs": source})

	deadline := time.After(10 * time.Second)

	for found := false; !found; {
		select {
		case files := <-batches:
			for _, f := range files {
				assert.NotEqual(t, "notes.txt", filepath.Base(f.Path))

				if filepath.Base(f.Path) == "a.cs" && len(f.Findings) == 1 {
					found = true
				}
			}

		case <-deadline:
			t.Fatal("No analysis of the changed file")
		}
	}

	cancel()
	require.NoError(t, <-done)
}
