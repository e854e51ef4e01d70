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

// Package engine runs redundancy rules over syntax trees and applies their
// fixes.
package engine

import (
	"container/heap"
	"context"
	"errors"
	"iter"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// Analyze traverses tree once in preorder and yields the findings of all
// rules in registry subscribed to the visited node kinds. Findings are
// yielded in order of their start offset. Generated code, unless enabled with
// [WithGenerated], and suppressed rules yield nothing. When ctx is canceled, the sequence ends after the findings
// produced so far.
func Analyze(ctx context.Context, tree *syntax.Tree, facts semantic.Facts, registry *rule.Registry, opts ...Option) iter.Seq[rule.Finding] {
	o := makeOptions(opts)

	return func(yield func(rule.Finding) bool) {
		defer trace.StartRegion(ctx, "Analyze").End()

		w := walker{
			ctx:      ctx,
			facts:    facts,
			registry: registry,
			options:  o,
			sup:      newSuppressions(),
			yield:    yield,
		}

		if w.visit(tree.Root(), false) {
			w.flush(-1)
		}
	}
}

type walker struct {
	ctx      context.Context
	facts    semantic.Facts
	registry *rule.Registry
	options  options
	sup      *suppressions
	pending  pending
	seq      int
	yield    func(rule.Finding) bool
}

// visit returns false when the traversal should stop.
func (w *walker) visit(c syntax.Cursor, generated bool) bool {
	if err := w.ctx.Err(); err != nil {
		w.flush(-1)

		return false
	}

	if !w.flush(c.FullSpan().Start) {
		return false
	}

	mark := w.sup.enter(c)

	generated = generated || !w.options.generated && w.facts.Generated(c)
	if !generated {
		w.dispatch(c)
	}

	for d := range c.Children() {
		if !w.visit(d, generated) {
			return false
		}
	}

	w.sup.exit(c, mark)

	return true
}

func (w *walker) dispatch(c syntax.Cursor) {
	for _, r := range w.registry.ForKind(c.Kind()) {
		if w.options.suppressions && w.sup.suppressed(r) {
			continue
		}

		matches, err := r.Check(c, w.facts)
		if err != nil {
			w.logFailure(c, r, err)

			continue
		}

		for _, m := range matches {
			if m.Span == (syntax.Span{}) {
				m.Span = c.Span()
			}

			heap.Push(&w.pending, item{rule.NewFinding(r, m), w.seq})
			w.seq++
		}
	}
}

func (w *walker) logFailure(c syntax.Cursor, r *rule.Rule, err error) {
	if w.options.logger == nil {
		return
	}

	level := slog.LevelDebug
	if !errors.Is(err, semantic.ErrUnresolved) && !errors.Is(err, syntax.ErrMalformed) {
		level = slog.LevelWarn
	}

	w.options.logger.LogAttrs(w.ctx, level, "Rule does not apply",
		slog.String("rule", r.ID),
		slog.String("kind", c.Kind().String()),
		slog.Int("offset", c.Span().Start),
		slog.Any("error", err))
}

// flush yields the pending findings starting at or before offset, all of them
// when offset is negative.
func (w *walker) flush(offset int) bool {
	for w.pending.Len() > 0 {
		if next := w.pending[0]; offset >= 0 && next.finding.Span.Start > offset {
			break
		}

		it, _ := heap.Pop(&w.pending).(item)
		if !w.yield(it.finding) {
			w.pending = nil

			return false
		}
	}

	return true
}

type item struct {
	finding rule.Finding
	seq     int
}

// pending is a min-heap of findings ordered by start offset and production order.
type pending []item

func (p pending) Len() int { return len(p) }

func (p pending) Less(i, j int) bool {
	if a, b := p[i].finding.Span.Start, p[j].finding.Span.Start; a != b {
		return a < b
	}

	return p[i].seq < p[j].seq
}

func (p pending) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p *pending) Push(x any) { *p = append(*p, x.(item)) }

func (p *pending) Pop() any {
	old := *p
	n := len(old)
	it := old[n-1]
	*p = old[:n-1]

	return it
}
