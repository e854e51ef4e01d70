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
	"io"
	"slices"
	"strings"
)

// Node is an immutable syntax node. Tokens carry text and the trivia around
// it, composite nodes carry ordered children. Nodes hold no parent links, so
// a subtree can be shared by several trees; navigation goes through [Tree]
// and [Cursor].
type Node struct {
	kind     Kind
	token    bool
	text     string
	leading  Trivia
	trailing Trivia
	children []*Node
	width    int
}

// NewToken creates a token of the given kind.
func NewToken(kind Kind, leading Trivia, text string, trailing Trivia) *Node {
	return &Node{
		kind:     kind,
		token:    true,
		text:     text,
		leading:  leading,
		trailing: trailing,
		width:    leading.Len() + len(text) + trailing.Len(),
	}
}

// NewNode creates a composite node. Nil children are dropped.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind, children: make([]*Node, 0, len(children))}
	for _, c := range children {
		if c == nil {
			continue
		}

		n.children = append(n.children, c)
		n.width += c.width
	}

	return n
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind { return n.kind }

// IsToken reports whether the node is a token.
func (n *Node) IsToken() bool { return n.token }

// Is reports whether the node is a token with the given text.
func (n *Node) Is(text string) bool { return n.token && n.text == text }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the i-th child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// FullWidth returns the length of the node's text including all trivia.
func (n *Node) FullWidth() int { return n.width }

// Width returns the length of the node's text without its outer trivia.
func (n *Node) Width() int { return n.width - n.Leading().Len() - n.Trailing().Len() }

// FirstToken returns the first token of the subtree, or nil if there is none.
func (n *Node) FirstToken() *Node {
	for !n.token {
		i := slices.IndexFunc(n.children, func(c *Node) bool { return c.token || c.FirstToken() != nil })
		if i < 0 {
			return nil
		}

		n = n.children[i]
	}

	return n
}

// LastToken returns the last token of the subtree, or nil if there is none.
func (n *Node) LastToken() *Node {
	for !n.token {
		var next *Node
		for _, c := range slices.Backward(n.children) {
			if c.token || c.LastToken() != nil {
				next = c

				break
			}
		}

		if next == nil {
			return nil
		}

		n = next
	}

	return n
}

// Leading returns the trivia in front of the node, owned by its first token.
func (n *Node) Leading() Trivia {
	if t := n.FirstToken(); t != nil {
		return t.leading
	}

	return nil
}

// Trailing returns the trivia after the node, owned by its last token.
func (n *Node) Trailing() Trivia {
	if t := n.LastToken(); t != nil {
		return t.trailing
	}

	return nil
}

// Text returns the source text of the node without its outer trivia.
func (n *Node) Text() string {
	if n.token {
		return n.text
	}

	full := n.FullText()

	return full[n.Leading().Len() : len(full)-n.Trailing().Len()]
}

// FullText returns the source text of the node including all trivia.
func (n *Node) FullText() string {
	var b strings.Builder
	b.Grow(n.width)
	n.write(&b)

	return b.String()
}

func (n *Node) String() string { return n.FullText() }

// WriteTo writes the full text of the node to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	c, err := io.WriteString(w, n.FullText())

	return int64(c), err
}

func (n *Node) write(b *strings.Builder) {
	if n.token {
		for _, p := range n.leading {
			b.WriteString(p.Text) // ignore error
		}

		b.WriteString(n.text) // ignore error

		for _, p := range n.trailing {
			b.WriteString(p.Text) // ignore error
		}

		return
	}

	for _, c := range n.children {
		c.write(b)
	}
}

// WithChildren returns a node of the same kind with the given children.
func (n *Node) WithChildren(children ...*Node) *Node {
	if n.token {
		return n
	}

	return NewNode(n.kind, children...)
}

// WithLeading returns a copy of the node whose first token has the given
// leading trivia. Only the path to that token is copied.
func (n *Node) WithLeading(t Trivia) *Node {
	if n.token {
		return NewToken(n.kind, t, n.text, n.trailing)
	}

	for i, c := range n.children {
		if c.FirstToken() == nil {
			continue
		}

		children := slices.Clone(n.children)
		children[i] = c.WithLeading(t)

		return NewNode(n.kind, children...)
	}

	return n
}

// WithTrailing returns a copy of the node whose last token has the given
// trailing trivia. Only the path to that token is copied.
func (n *Node) WithTrailing(t Trivia) *Node {
	if n.token {
		return NewToken(n.kind, n.leading, n.text, t)
	}

	for i, c := range slices.Backward(n.children) {
		if c.LastToken() == nil {
			continue
		}

		children := slices.Clone(n.children)
		children[i] = c.WithTrailing(t)

		return NewNode(n.kind, children...)
	}

	return n
}
