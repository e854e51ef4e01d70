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

// Package run discovers C# files and processes them in parallel: parse, bind,
// analyze and optionally fix.
package run

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/csharp"
	"fillmore-labs.com/redundancy/internal/report"
	"fillmore-labs.com/redundancy/internal/sema"
)

// Run processes files in parallel and returns their results sorted by path.
// Failures of single files are recorded in their results; the returned error
// is only set when ctx is canceled.
func Run(ctx context.Context, files []string, o *Options) ([]report.File, error) {
	ctx, task := trace.NewTask(ctx, "Redundancy")
	defer task.End()

	results := make([]report.File, len(files))

	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(o.jobs(), len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = o.File(gctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b report.File) int { return cmp.Compare(a.Path, b.Path) })

	return results, nil
}

// File processes the file at path and writes the fixed text back when
// requested.
func (o *Options) File(ctx context.Context, path string) report.File {
	defer trace.StartRegion(ctx, "File").End()

	trace.Log(ctx, "file", path)

	info, err := os.Stat(path)
	if err != nil {
		return report.File{Path: path, Err: err}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return report.File{Path: path, Err: err}
	}

	f := o.Source(ctx, path, src)

	if o.Write && f.Err == nil && f.Changed() {
		if err := os.WriteFile(path, []byte(f.Fixed.Text()), info.Mode().Perm()); err != nil {
			f.Err = fmt.Errorf("write: %w", err)
		}
	}

	return f
}

// Source processes src as the content of path.
func (o *Options) Source(ctx context.Context, path string, src []byte) report.File {
	f := report.File{Path: path}

	tree, err := csharp.Parse(ctx, path, src)
	if err != nil {
		f.Err = err

		return f
	}

	f.Tree = tree

	model, err := sema.Bind(tree)
	if err != nil {
		f.Err = err

		return f
	}

	opts := o.engineOptions()
	f.Findings = slices.Collect(engine.Analyze(ctx, tree, model, o.Registry, opts...))

	if err := ctx.Err(); err != nil {
		f.Err = err

		return f
	}

	if !o.Fix && !o.Write || len(f.Findings) == 0 {
		return f
	}

	if csharp.HasErrors(tree) {
		o.logger().LogAttrs(ctx, slog.LevelWarn, "Not fixing file with syntax errors", slog.String("file", path))

		return f
	}

	f.Fixed, f.Applied, err = engine.FixAll(ctx, tree, sema.Binder, o.Registry, opts...)
	if err != nil {
		f.Fixed, f.Err = nil, err
	}

	return f
}
