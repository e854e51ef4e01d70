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

package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"maps"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/config"
	"fillmore-labs.com/redundancy/internal/csharp"
	"fillmore-labs.com/redundancy/internal/report"
	"fillmore-labs.com/redundancy/internal/sema"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
)

// run executes the analysis pass over the C# files of a package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	ctx, task := trace.NewTask(context.Background(), "Redundancy")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	registry, err := config.SelectRules(rules.Default(), r.rules)
	if err != nil {
		return nil, fmt.Errorf("redundancy: %w", err)
	}

	files, err := r.sources(p)
	if err != nil {
		return nil, fmt.Errorf("redundancy: %w", err)
	}

	opts := engine.Options{
		engine.WithSuppressions(r.behavior.Enabled(config.Suppressions)),
		engine.WithGenerated(r.behavior.Enabled(config.IncludeGenerated)),
	}

	for _, path := range files {
		if err := analyzeFile(ctx, p, registry, path, opts); err != nil {
			return nil, fmt.Errorf("redundancy: %w", err)
		}
	}

	return nil, nil
}

// sources returns the C# files of the pass: the other files matching the
// pattern and the matching files in the directories of the Go files.
func (r *runOptions) sources(p *analysis.Pass) ([]string, error) {
	if r.pattern == "" {
		return slices.Sorted(slices.Values(p.OtherFiles)), nil
	}

	var (
		files []string
		seen  = make(map[string]struct{})
		dirs  = make(map[string]struct{})
	)

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, name := range p.OtherFiles {
		ok, err := doublestar.Match(r.pattern, filepath.ToSlash(filepath.Base(name)))
		if err != nil {
			return nil, err
		}

		if ok {
			add(filepath.Clean(name))
		}
	}

	for _, f := range p.Files {
		if tf := p.Fset.File(f.Pos()); tf != nil {
			dirs[filepath.Dir(tf.Name())] = struct{}{}
		}
	}

	for _, dir := range slices.Sorted(maps.Keys(dirs)) {
		matches, err := doublestar.Glob(os.DirFS(dir), r.pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			add(filepath.Join(dir, filepath.FromSlash(m)))
		}
	}

	slices.Sort(files)

	return files, nil
}

func analyzeFile(ctx context.Context, p *analysis.Pass, registry *rule.Registry, path string, opts engine.Options) error {
	defer trace.StartRegion(ctx, "File").End()

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	tree, err := csharp.Parse(ctx, path, content)
	if err != nil {
		return err
	}

	tf := report.AddFile(p.Fset, tree)

	model, err := sema.Bind(tree)
	if err != nil {
		report.InternalError(p, fileStart{tf}, "Can't bind %s: %v", path, err)

		return nil
	}

	findings := slices.Collect(engine.Analyze(ctx, tree, model, registry, opts...))

	// No fixes for trees with syntax errors.
	if csharp.HasErrors(tree) {
		for i := range findings {
			findings[i].Fix = nil
		}
	}

	for _, d := range report.Diagnostics(tf, tree, findings) {
		p.Report(d)
	}

	return nil
}

type fileStart struct{ file *token.File }

func (f fileStart) Pos() token.Pos { return f.file.Pos(0) }

func (f fileStart) End() token.Pos { return f.file.Pos(0) }
