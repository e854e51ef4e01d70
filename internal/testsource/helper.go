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

// Package testsource provides utilities for parsing and binding C# source
// code in tests.
//
// It contains a small deterministic parser for the C# subset used by test
// fixtures. The trees it builds have the same shapes as the trees of the
// tree-sitter front end, so tests do not depend on cgo.
package testsource

import (
	"strings"
	"testing"

	"fillmore-labs.com/redundancy/internal/sema"
	"fillmore-labs.com/redundancy/syntax"
)

const (
	filename = "Test.cs"
	header   = "class Test\n{\n\tvoid Method()\n\t{\n"
	suffix   = "\n\t}\n}\n"
)

// Parse parses a C# statement fragment. The provided source `src` is wrapped
// in the body of a method `Method` within a class `Test`, see [Wrap].
func Parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	return ParseFile(tb, filename, Wrap(src))
}

// ParseFile parses a complete C# compilation unit.
func ParseFile(tb testing.TB, name, src string) *syntax.Tree {
	tb.Helper()

	tree, err := ParseSource(name, src)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	if got := tree.Text(); got != src {
		tb.Fatalf("Parsed text differs from source:\n%s\nwant:\n%s", got, src)
	}

	return tree
}

// Check computes the semantic model of a tree.
func Check(tb testing.TB, tree *syntax.Tree) *sema.Model {
	tb.Helper()

	m, err := sema.Bind(tree)
	if err != nil {
		tb.Fatalf("Failed to bind %s: %v", tree.Name(), err)
	}

	return m
}

// Wrap returns src as the body of a method in a class.
func Wrap(src string) string {
	var b strings.Builder
	b.Grow(len(header) + len(src) + len(suffix))

	b.WriteString(header) // ignore error
	b.WriteString(src)    // ignore error
	b.WriteString(suffix) // ignore error

	return b.String()
}

// Find returns the n-th node of the given kind in preorder, starting at 0.
func Find(tb testing.TB, tree *syntax.Tree, kind syntax.Kind, n int) syntax.Cursor {
	tb.Helper()

	for c := range tree.Root().Preorder(kind) {
		if n == 0 {
			return c
		}

		n--
	}

	tb.Fatalf("Can't find %s in %s", kind, tree.Name())

	return syntax.Cursor{}
}
