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

// Package csharp parses C# source files into syntax trees using tree-sitter.
package csharp

import (
	"context"
	"errors"
	"fmt"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"fillmore-labs.com/redundancy/syntax"
)

// ErrTooLarge is returned for sources exceeding the offsets of tree-sitter.
var ErrTooLarge = errors.New("source too large")

// Parse parses a C# compilation unit. Syntax errors do not fail the parse;
// they are represented as nodes of kind [syntax.Error], missing tokens as
// empty tokens of that kind. See [HasErrors].
func Parse(ctx context.Context, name string, src []byte) (*syntax.Tree, error) {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrTooLarge, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", name, err)
	}
	defer tree.Close()

	b := builder{src: string(src)}

	b.collect(tree.RootNode())
	b.distribute()

	root := b.build(tree.RootNode())

	return syntax.NewTree(name, root), nil
}

// HasErrors reports whether the tree contains syntax errors.
func HasErrors(tree *syntax.Tree) bool {
	for range tree.Root().Preorder(syntax.Error) {
		return true
	}

	return false
}

type token struct {
	start, end int
	leading    syntax.Trivia
	trailing   syntax.Trivia
}

// builder converts a tree-sitter tree in two walks. The first collects the
// byte ranges of all tokens, the second builds the nodes, attaching the trivia
// found between the collected ranges.
type builder struct {
	src    string
	tokens []token
	next   int
}

// classify returns the kind of n and whether it becomes a single token.
func classify(n *sitter.Node) (kind syntax.Kind, leaf bool) {
	typ := n.Type()

	if n.IsMissing() {
		return syntax.Error, true
	}

	if k, ok := collapsed[typ]; ok {
		return k, true
	}

	if k, ok := kinds[typ]; ok {
		return k, n.ChildCount() == 0 && k != syntax.CompilationUnit
	}

	if n.ChildCount() == 0 {
		return syntax.Token, true
	}

	return syntax.Other, false
}

// skip reports whether n contributes no tokens. Comments and directives are
// extras, recovered as trivia from the text between tokens. ERROR nodes are
// extras too, but are kept so HasErrors sees them.
func skip(n *sitter.Node) bool {
	if n.IsMissing() || n.Type() == "ERROR" {
		return false
	}

	return n.IsExtra() || n.Type() == "comment" || n.StartByte() == n.EndByte()
}

func (b *builder) collect(n *sitter.Node) {
	if skip(n) && n.Type() != "compilation_unit" {
		return
	}

	if _, leaf := classify(n); leaf {
		b.tokens = append(b.tokens, token{start: int(n.StartByte()), end: int(n.EndByte())})

		return
	}

	for i := range int(n.ChildCount()) {
		b.collect(n.Child(i))
	}
}

// distribute assigns the text between tokens as trivia and appends the
// end-of-file token.
func (b *builder) distribute() {
	b.tokens = append(b.tokens, token{start: len(b.src), end: len(b.src)})

	prev := 0
	for k := range b.tokens {
		gap := b.src[prev:b.tokens[k].start]
		if k == 0 {
			b.tokens[k].leading = syntax.ScanTrivia(gap)
		} else {
			b.tokens[k-1].trailing, b.tokens[k].leading = syntax.SplitTrivia(gap)
		}

		prev = b.tokens[k].end
	}
}

func (b *builder) token(kind syntax.Kind) *syntax.Node {
	t := b.tokens[b.next]
	b.next++

	return syntax.NewToken(kind, t.leading, b.src[t.start:t.end], t.trailing)
}

func (b *builder) build(n *sitter.Node) *syntax.Node {
	root := n.Type() == "compilation_unit"
	if skip(n) && !root {
		return nil
	}

	kind, leaf := classify(n)
	if leaf {
		return b.token(kind)
	}

	children := make([]*syntax.Node, 0, n.ChildCount()+1)
	for i := range int(n.ChildCount()) {
		children = append(children, b.build(n.Child(i)))
	}

	if n.Type() == "assignment_expression" {
		kind = syntax.AssignmentKind(operator(children))
	}

	if root {
		children = append(children, b.token(syntax.Token))
	}

	return syntax.NewNode(kind, children...)
}

// operator returns the text of the middle token of an assignment.
func operator(children []*syntax.Node) string {
	var operands []*syntax.Node
	for _, c := range children {
		if c != nil {
			operands = append(operands, c)
		}
	}

	if len(operands) != 3 || !operands[1].IsToken() {
		return ""
	}

	return operands[1].Text()
}
