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

package rewrite

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/redundancy/syntax"
)

// ApplyFix applies a single fix to tree.
func ApplyFix(tree *syntax.Tree, fix Fix) (*syntax.Tree, error) {
	return ApplyFixes(tree, fix)
}

// ApplyFixes applies all edits of fixes to tree in one pass. All edits are
// resolved against tree before anything is changed; when one of them can not
// be resolved, no edit is applied. Overlapping edits panic with an
// [*OverlapError].
func ApplyFixes(tree *syntax.Tree, fixes ...Fix) (*syntax.Tree, error) {
	var targets []target
	for _, fix := range fixes {
		for _, e := range fix.Edits {
			c, ok := tree.Find(e.Target)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnresolvedReplacement, fix.Message)
			}

			targets = append(targets, target{c, e})
		}
	}

	if len(targets) == 0 {
		return tree, nil
	}

	slices.SortFunc(targets, func(a, b target) int { return cmp.Compare(a.cursor.Index(), b.cursor.Index()) })

	for i := 1; i < len(targets); i++ {
		if prev, next := targets[i-1].cursor, targets[i].cursor; prev.Contains(next) {
			panic(&OverlapError{First: prev.FullSpan(), Second: next.FullSpan()})
		}
	}

	r := rewriter{
		text:  tree.Text(),
		edits: make(map[int32]Edit, len(targets)),
		dirty: make(map[int32]struct{}),
	}

	for _, t := range targets {
		r.edits[t.cursor.Index()] = t.edit
		for p := t.cursor.Parent(); p.Valid(); p = p.Parent() {
			if _, ok := r.dirty[p.Index()]; ok {
				break
			}

			r.dirty[p.Index()] = struct{}{}
		}
	}

	root, carry := r.rebuild(tree.Root())
	if root == nil {
		return nil, fmt.Errorf("%w: root removed", syntax.ErrMalformed)
	}

	if len(carry) > 0 {
		root = root.WithTrailing(append(root.Trailing()[:len(root.Trailing()):len(root.Trailing())], carry...))
	}

	return syntax.NewTree(tree.Name(), root), nil
}

type target struct {
	cursor syntax.Cursor
	edit   Edit
}

type rewriter struct {
	text  string
	edits map[int32]Edit
	dirty map[int32]struct{}
}

// rebuild returns the rewritten node at c, or nil if it is removed, together
// with trivia that must be moved in front of the next token.
func (r *rewriter) rebuild(c syntax.Cursor) (*syntax.Node, syntax.Trivia) {
	if e, ok := r.edits[c.Index()]; ok {
		return r.apply(c, e)
	}

	n := c.Node()
	if _, ok := r.dirty[c.Index()]; !ok {
		return n, nil
	}

	var (
		children = make([]*syntax.Node, 0, n.Len())
		pending  syntax.Trivia
	)

	for d := range c.Children() {
		child, carry := r.rebuild(d)
		if child != nil && len(pending) > 0 && child.FirstToken() != nil {
			child = attach(child, pending)
			pending = nil
		}

		if child == nil && startsLine(carry) && len(children) > 0 {
			last := children[len(children)-1]
			children[len(children)-1] = last.WithTrailing(last.Trailing().TrimTrailingSpace())
		}

		pending = append(pending, carry...)

		if child != nil {
			children = append(children, child)
		}
	}

	return n.WithChildren(children...), pending
}

func (r *rewriter) apply(c syntax.Cursor, e Edit) (*syntax.Node, syntax.Trivia) {
	old := c.Node()

	if e.Replacement != nil {
		repl := e.Replacement
		if repl.FirstToken() != nil {
			repl = repl.WithLeading(old.Leading()).WithTrailing(old.Trailing())
		}

		return repl, e.Carry
	}

	var (
		carry    syntax.Trivia
		leading  = old.Leading()
		trailing = old.Trailing()
		joins    = r.needsBreak(c)
	)

	switch {
	case trailing.HasComment():
		// The trailing comment keeps its line break.
		if leading.HasComment() {
			carry = append(carry, leading...)
		} else if !joins {
			carry = append(carry, leading.Indentation()...)
		}

		carry = append(carry, trailing.TrimLeadingSpace()...)

	default:
		if joins {
			carry = append(carry, syntax.Piece{Kind: syntax.EndOfLine, Text: lineBreak(trailing)})
		}

		if leading.HasComment() {
			carry = append(carry, leading...)
		}
	}

	return nil, append(carry, e.Carry...)
}

// needsBreak reports whether removing the node at c would join the preceding
// and the following line.
func (r *rewriter) needsBreak(c syntax.Cursor) bool {
	if !hasBreak(c.Node().Trailing()) {
		return false
	}

	before := strings.TrimRight(r.text[:c.FullSpan().Start], " \t")

	return before != "" && !strings.HasSuffix(before, "\n") && !strings.HasSuffix(before, "\r")
}

// attach moves carried trivia in front of the first token of n. Carried
// comments replace the indentation of n unless they end a line.
func attach(n *syntax.Node, carry syntax.Trivia) *syntax.Node {
	leading := n.Leading()
	if carry.HasComment() && carry[len(carry)-1].Kind != syntax.EndOfLine {
		leading = leading.TrimLeadingSpace()
	}

	return n.WithLeading(append(carry[:len(carry):len(carry)], leading...))
}

// startsLine reports whether t begins with a line break.
func startsLine(t syntax.Trivia) bool {
	return len(t) > 0 && t[0].Kind == syntax.EndOfLine
}

func hasBreak(t syntax.Trivia) bool {
	return slices.ContainsFunc(t, func(p syntax.Piece) bool { return p.Kind == syntax.EndOfLine })
}

func lineBreak(t syntax.Trivia) string {
	for _, p := range t {
		if p.Kind == syntax.EndOfLine {
			return p.Text
		}
	}

	return "\n"
}
