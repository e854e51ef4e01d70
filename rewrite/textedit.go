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
	"strings"

	"fillmore-labs.com/redundancy/syntax"
)

// TextEdit replaces the byte range [Start, End) of the old text with NewText.
type TextEdit struct {
	Start, End int
	NewText    string
}

// TextEdits returns the edits turning the text of old into the text of new.
// Subtrees shared between both trees are not compared; the remaining
// differences are trimmed to their changed bytes. Edits are sorted and do not
// overlap.
func TextEdits(old, new *syntax.Tree) []TextEdit {
	var edits []TextEdit
	diffNodes(old.RootNode(), new.RootNode(), 0, &edits)

	return edits
}

// ApplyText applies sorted, non-overlapping edits to text.
func ApplyText(text string, edits []TextEdit) string {
	var (
		b    strings.Builder
		last int
	)

	for _, e := range edits {
		b.WriteString(text[last:e.Start]) // ignore error
		b.WriteString(e.NewText)          // ignore error
		last = e.End
	}

	b.WriteString(text[last:]) // ignore error

	return b.String()
}

func diffNodes(o, n *syntax.Node, offset int, edits *[]TextEdit) {
	if o == n {
		return
	}

	if o.IsToken() || n.IsToken() || o.Kind() != n.Kind() {
		addEdit(edits, offset, o.FullText(), n.FullText())

		return
	}

	oc, nc := o.Children(), n.Children()
	pairs := align(oc, nc)

	i, j := 0, 0
	for _, p := range append(pairs, [2]int{len(oc), len(nc)}) {
		start := offset
		diffRun(oc[i:p[0]], nc[j:p[1]], start, edits)

		for _, c := range oc[i:p[0]] {
			offset += c.FullWidth()
		}

		if p[0] < len(oc) {
			offset += oc[p[0]].FullWidth()
		}

		i, j = p[0]+1, p[1]+1
	}
}

// diffRun compares unmatched runs of children.
func diffRun(o, n []*syntax.Node, offset int, edits *[]TextEdit) {
	if len(o) == len(n) {
		for k := range o {
			diffNodes(o[k], n[k], offset, edits)
			offset += o[k].FullWidth()
		}

		return
	}

	addEdit(edits, offset, fullText(o), fullText(n))
}

// align returns index pairs of identical children, as a longest common
// subsequence by pointer identity.
func align(o, n []*syntax.Node) [][2]int {
	if len(o) == 0 || len(n) == 0 {
		return nil
	}

	lcs := make([][]int, len(o)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(n)+1)
	}

	for i := len(o) - 1; i >= 0; i-- {
		for j := len(n) - 1; j >= 0; j-- {
			if o[i] == n[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var pairs [][2]int
	for i, j := 0, 0; i < len(o) && j < len(n); {
		switch {
		case o[i] == n[j]:
			pairs = append(pairs, [2]int{i, j})
			i++
			j++

		case lcs[i+1][j] >= lcs[i][j+1]:
			i++

		default:
			j++
		}
	}

	return pairs
}

func addEdit(edits *[]TextEdit, offset int, oldText, newText string) {
	if oldText == newText {
		return
	}

	prefix := 0
	for prefix < len(oldText) && prefix < len(newText) && oldText[prefix] == newText[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(oldText)-prefix && suffix < len(newText)-prefix &&
		oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}

	e := TextEdit{
		Start:   offset + prefix,
		End:     offset + len(oldText) - suffix,
		NewText: newText[prefix : len(newText)-suffix],
	}

	if k := len(*edits) - 1; k >= 0 && (*edits)[k].End == e.Start {
		(*edits)[k].End = e.End
		(*edits)[k].NewText += e.NewText

		return
	}

	*edits = append(*edits, e)
}

func fullText(nodes []*syntax.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.FullText()) // ignore error
	}

	return b.String()
}
