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

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// DefaultMaxPasses is the default number of analyze and fix rounds of [FixAll].
const DefaultMaxPasses = 10

// SelectFixes picks the fixes of findings that can be applied together: in
// source order, the first fix of every group whose edits do not overlap the
// edits selected before. Fixes referencing nodes outside tree are skipped.
func SelectFixes(tree *syntax.Tree, findings []rule.Finding) []rewrite.Fix {
	var (
		fixes  []rewrite.Fix
		spans  []syntax.Span
		groups = make(map[string]struct{})
	)

	for _, f := range findings {
		if f.Fix == nil || len(f.Fix.Edits) == 0 {
			continue
		}

		if f.Group != "" {
			if _, ok := groups[f.Group]; ok {
				continue
			}
		}

		extent, ok := fixSpans(tree, f.Fix)
		if !ok || overlaps(spans, extent) {
			continue
		}

		if f.Group != "" {
			groups[f.Group] = struct{}{}
		}

		spans = append(spans, extent...)
		fixes = append(fixes, *f.Fix)
	}

	return fixes
}

func fixSpans(tree *syntax.Tree, fix *rewrite.Fix) ([]syntax.Span, bool) {
	spans := make([]syntax.Span, 0, len(fix.Edits))
	for _, e := range fix.Edits {
		c, ok := tree.Find(e.Target)
		if !ok {
			return nil, false
		}

		spans = append(spans, c.FullSpan())
	}

	return spans, true
}

func overlaps(selected, spans []syntax.Span) bool {
	for _, s := range spans {
		if slices.ContainsFunc(selected, s.Overlaps) {
			return true
		}
	}

	return false
}

// FixAll repeatedly analyzes tree and applies the selectable fixes until no
// fix remains or the pass limit is reached. Facts are recomputed by bind for
// every new tree version. It returns the final tree and the number of applied
// fixes.
func FixAll(ctx context.Context, tree *syntax.Tree, bind semantic.Binder, registry *rule.Registry, opts ...Option) (*syntax.Tree, int, error) {
	defer trace.StartRegion(ctx, "FixAll").End()

	o := makeOptions(opts)

	applied := 0
	for pass := range o.maxPasses {
		facts, err := bind(tree)
		if err != nil {
			return nil, applied, fmt.Errorf("pass %d: %w", pass+1, err)
		}

		findings := slices.Collect(Analyze(ctx, tree, facts, registry, opts...))
		if err := ctx.Err(); err != nil {
			return nil, applied, err
		}

		fixes := SelectFixes(tree, findings)
		if len(fixes) == 0 {
			return tree, applied, nil
		}

		tree, err = rewrite.ApplyFixes(tree, fixes...)
		if err != nil {
			return nil, applied, fmt.Errorf("pass %d: %w", pass+1, err)
		}

		applied += len(fixes)
	}

	if o.logger != nil {
		o.logger.LogAttrs(ctx, slog.LevelDebug, "Fix pass limit reached",
			slog.String("file", tree.Name()),
			slog.Int("passes", o.maxPasses))
	}

	return tree, applied, nil
}
