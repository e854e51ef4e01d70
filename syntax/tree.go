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

package syntax

import (
	"errors"
	"sync"
)

// ErrMalformed is returned when a node does not have the expected shape.
var ErrMalformed = errors.New("malformed syntax tree")

// Tree is a root node plus a preorder index of all its nodes. The index holds
// parent, sibling and subtree-extent links as int32 offsets into one arena,
// together with the full start offset of every node.
//
// A node pointer should appear at most once in a tree; [Tree.Find] reports
// the first occurrence in preorder.
type Tree struct {
	name  string
	nodes []entry
	index func() map[*Node]int32
	text  func() string
}

type entry struct {
	node   *Node
	parent int32 // -1 for the root
	prev   int32 // -1 for the first child
	next   int32 // -1 for the last child
	last   int32 // preorder index of the last node in the subtree
	child  int32 // index in the parent's child list
	start  int   // full start offset, including leading trivia
}

// NewTree indexes the tree rooted at root. The name is usually the file path.
func NewTree(name string, root *Node) *Tree {
	t := &Tree{name: name}
	t.nodes = make([]entry, 0, 64)
	t.add(root, -1, 0, 0)

	t.index = sync.OnceValue(func() map[*Node]int32 {
		m := make(map[*Node]int32, len(t.nodes))
		for i, e := range t.nodes {
			if _, ok := m[e.node]; !ok {
				m[e.node] = int32(i)
			}
		}

		return m
	})

	t.text = sync.OnceValue(root.FullText)

	return t
}

func (t *Tree) add(n *Node, parent, child int32, start int) int32 {
	i := int32(len(t.nodes))
	t.nodes = append(t.nodes, entry{node: n, parent: parent, prev: -1, next: -1, child: child, start: start})

	prev := int32(-1)
	for j, c := range n.children {
		k := t.add(c, i, int32(j), start)
		if prev >= 0 {
			t.nodes[prev].next = k
			t.nodes[k].prev = prev
		}

		prev = k
		start += c.width
	}

	t.nodes[i].last = int32(len(t.nodes) - 1)

	return i
}

// Name returns the name the tree was created with.
func (t *Tree) Name() string { return t.name }

// Root returns a cursor at the root node.
func (t *Tree) Root() Cursor { return Cursor{t, 0} }

// RootNode returns the root node.
func (t *Tree) RootNode() *Node { return t.nodes[0].node }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Text returns the full source text of the tree.
func (t *Tree) Text() string { return t.text() }

// Find returns a cursor at n, if n is part of the tree.
func (t *Tree) Find(n *Node) (Cursor, bool) {
	i, ok := t.index()[n]
	if !ok {
		return Cursor{}, false
	}

	return Cursor{t, i}, true
}

// Contains reports whether n is part of the tree.
func (t *Tree) Contains(n *Node) bool {
	_, ok := t.index()[n]

	return ok
}

// At returns a cursor at the given preorder index.
func (t *Tree) At(index int32) Cursor {
	if index < 0 || int(index) >= len(t.nodes) {
		return Cursor{}
	}

	return Cursor{t, index}
}

// Span is a half-open byte range [Start, End) in the source text.
type Span struct {
	Start, End int
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool { return s.Start <= o.Start && o.End <= s.End }

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool { return s.Start < o.End && o.Start < s.End }
