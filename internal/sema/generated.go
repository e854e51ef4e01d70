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

package sema

import (
	"regexp"
	"strings"

	"fillmore-labs.com/redundancy/syntax"
)

var (
	generatedSuffixes = [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs"}
	generatedHeader   = regexp.MustCompile(`(?i)<auto-?generated`)
	generatedCode     = regexp.MustCompile(`^(?:global::)?(?:System\.CodeDom\.Compiler\.)?GeneratedCode(?:Attribute)?\b`)
)

// Generated implements [semantic.Facts].
func (m *Model) Generated(n syntax.Cursor) bool {
	i := int(n.Index())

	return i < len(m.generated) && m.generated[i]
}

// GeneratedFile reports whether the tree is a generated file, judged by its
// name or an auto-generated header comment.
func GeneratedFile(tree *syntax.Tree) bool {
	name := strings.ToLower(tree.Name())
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	for _, comment := range tree.RootNode().Leading().Comments() {
		if generatedHeader.MatchString(comment) {
			return true
		}
	}

	return false
}

// markGenerated flags every node of a generated file, and the declarations
// carrying a [GeneratedCode] attribute with their subtrees.
func markGenerated(tree *syntax.Tree) []bool {
	marks := make([]bool, tree.Len())

	if GeneratedFile(tree) {
		for i := range marks {
			marks[i] = true
		}

		return marks
	}

	for attrs := range tree.Root().Preorder(syntax.AttributeList) {
		if !hasGeneratedCode(attrs) {
			continue
		}

		decl := attrs.Parent()
		if !decl.Valid() || marks[decl.Index()] {
			continue
		}

		for d := range decl.Preorder() {
			marks[d.Index()] = true
		}
	}

	return marks
}

func hasGeneratedCode(attrs syntax.Cursor) bool {
	text := strings.TrimPrefix(strings.TrimSpace(attrs.Text()), "[")
	for attr := range strings.SplitSeq(text, ",") {
		attr = strings.TrimSpace(attr)
		if i := strings.IndexByte(attr, ':'); i >= 0 && !strings.HasPrefix(attr, "global::") {
			attr = strings.TrimSpace(attr[i+1:]) // target specifier
		}

		if generatedCode.MatchString(attr) {
			return true
		}
	}

	return false
}
