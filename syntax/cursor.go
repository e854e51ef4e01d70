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

import "iter"

// Cursor is a position in a [Tree]: a node together with its place in the
// index. The zero Cursor is invalid.
type Cursor struct {
	tree  *Tree
	index int32
}

// Valid reports whether c points at a node.
func (c Cursor) Valid() bool { return c.tree != nil }

// Tree returns the tree c navigates.
func (c Cursor) Tree() *Tree { return c.tree }

// Index returns the preorder index of the node.
func (c Cursor) Index() int32 { return c.index }

// Node returns the node at c.
func (c Cursor) Node() *Node { return c.entry().node }

// Kind returns the kind of the node at c.
func (c Cursor) Kind() Kind {
	if c.tree == nil {
		return Invalid
	}

	return c.entry().node.kind
}

// Is reports whether the node at c has one of the given kinds.
func (c Cursor) Is(kinds ...Kind) bool {
	if c.tree == nil {
		return false
	}

	k := c.entry().node.kind
	for _, want := range kinds {
		if k == want {
			return true
		}
	}

	return false
}

func (c Cursor) entry() *entry { return &c.tree.nodes[c.index] }

func (c Cursor) at(i int32) Cursor {
	if i < 0 {
		return Cursor{}
	}

	return Cursor{c.tree, i}
}

// Parent returns the parent of c, or an invalid cursor at the root.
func (c Cursor) Parent() Cursor { return c.at(c.entry().parent) }

// NextSibling returns the next sibling of c, or an invalid cursor.
func (c Cursor) NextSibling() Cursor { return c.at(c.entry().next) }

// PrevSibling returns the previous sibling of c, or an invalid cursor.
func (c Cursor) PrevSibling() Cursor { return c.at(c.entry().prev) }

// ChildIndex returns the position of c in its parent's child list.
func (c Cursor) ChildIndex() int { return int(c.entry().child) }

// NumChildren returns the number of children of c.
func (c Cursor) NumChildren() int { return len(c.entry().node.children) }

// FirstChild returns the first child of c, or an invalid cursor.
func (c Cursor) FirstChild() Cursor {
	if c.NumChildren() == 0 {
		return Cursor{}
	}

	return Cursor{c.tree, c.index + 1}
}

// LastChild returns the last child of c, or an invalid cursor.
func (c Cursor) LastChild() Cursor {
	var last Cursor
	for d := c.FirstChild(); d.Valid(); d = d.NextSibling() {
		last = d
	}

	return last
}

// Child returns the i-th child of c, or an invalid cursor.
func (c Cursor) Child(i int) Cursor {
	if i < 0 || i >= c.NumChildren() {
		return Cursor{}
	}

	d := c.FirstChild()
	for range i {
		d = d.NextSibling()
	}

	return d
}

// Children yields the children of c in order.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for d := c.FirstChild(); d.Valid(); d = d.NextSibling() {
			if !yield(d) {
				return
			}
		}
	}
}

// ChildOfKind returns the first child of c with the given kind.
func (c Cursor) ChildOfKind(k Kind) (Cursor, bool) {
	for d := range c.Children() {
		if d.Kind() == k {
			return d, true
		}
	}

	return Cursor{}, false
}

// TokenChild returns the first child token of c with the given text.
func (c Cursor) TokenChild(text string) (Cursor, bool) {
	for d := range c.Children() {
		if d.Node().Is(text) {
			return d, true
		}
	}

	return Cursor{}, false
}

// Preorder yields c and its descendants in preorder. When kinds are given,
// only nodes of those kinds are yielded.
func (c Cursor) Preorder(kinds ...Kind) iter.Seq[Cursor] {
	filter := Kinds(kinds...)

	return func(yield func(Cursor) bool) {
		for i := c.index; i <= c.entry().last; i++ {
			d := Cursor{c.tree, i}
			if (filter.Empty() || filter.Contains(d.Kind())) && !yield(d) {
				return
			}
		}
	}
}

// Enclosing yields c and its ancestors, innermost first. When kinds are given,
// only nodes of those kinds are yielded.
func (c Cursor) Enclosing(kinds ...Kind) iter.Seq[Cursor] {
	filter := Kinds(kinds...)

	return func(yield func(Cursor) bool) {
		for d := c; d.Valid(); d = d.Parent() {
			if (filter.Empty() || filter.Contains(d.Kind())) && !yield(d) {
				return
			}
		}
	}
}

// Contains reports whether d is c or a descendant of c.
func (c Cursor) Contains(d Cursor) bool {
	return c.tree == d.tree && c.index <= d.index && d.index <= c.entry().last
}

// FullSpan returns the range of the node's text including trivia.
func (c Cursor) FullSpan() Span {
	e := c.entry()

	return Span{Start: e.start, End: e.start + e.node.width}
}

// Span returns the range of the node's text without its outer trivia.
func (c Cursor) Span() Span {
	e := c.entry()
	if e.node.FirstToken() == nil {
		return Span{Start: e.start, End: e.start}
	}

	return Span{Start: e.start + e.node.Leading().Len(), End: e.start + e.node.width - e.node.Trailing().Len()}
}

// Text returns the source text of the node without its outer trivia.
func (c Cursor) Text() string { return c.Node().Text() }
