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

// Package report converts findings into go/analysis diagnostics and prints
// them as text, JSON or unified diffs.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/syntax"
)

// File is the result of processing one source file.
type File struct {
	// Path is the file name as given on the command line.
	Path string

	// Tree is the analyzed tree. Findings refer to its text.
	Tree *syntax.Tree

	Findings []rule.Finding

	// Fixed is the tree after all fixes are applied, nil when fixing was not requested.
	Fixed *syntax.Tree

	// Applied is the number of fixes applied to produce Fixed.
	Applied int

	// Err is set when the file could not be processed.
	Err error
}

// Changed reports whether fixes modified the file.
func (f File) Changed() bool { return f.Fixed != nil && f.Applied > 0 && f.Fixed.Text() != f.Tree.Text() }

// AddFile registers the text of tree with fset.
func AddFile(fset *token.FileSet, tree *syntax.Tree) *token.File {
	text := tree.Text()

	tf := fset.AddFile(tree.Name(), -1, len(text))
	tf.SetLinesForContent([]byte(text))

	return tf
}

// Diagnostics converts findings on tree into diagnostics positioned in tf,
// which must hold the text of tree. The fix of a finding becomes a suggested
// fix of text edits.
func Diagnostics(tf *token.File, tree *syntax.Tree, findings []rule.Finding) []analysis.Diagnostic {
	diagnostics := make([]analysis.Diagnostic, 0, len(findings))

	for _, f := range findings {
		diagnostic := analysis.Diagnostic{
			Pos:      tf.Pos(f.Span.Start),
			End:      tf.Pos(f.Span.End),
			Category: f.Rule.Name,
			Message:  fmt.Sprintf("%s (%s)", f.Message(), f.Rule.ID),
		}

		for _, s := range f.Secondary {
			diagnostic.Related = append(diagnostic.Related, analysis.RelatedInformation{
				Pos:     tf.Pos(s.Start),
				End:     tf.Pos(s.End),
				Message: "Also redundant",
			})
		}

		if edits, ok := FixEdits(tree, f); ok {
			textEdits := make([]analysis.TextEdit, 0, len(edits))
			for _, e := range edits {
				textEdits = append(textEdits, analysis.TextEdit{
					Pos:     tf.Pos(e.Start),
					End:     tf.Pos(e.End),
					NewText: []byte(e.NewText),
				})
			}

			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: f.Fix.Message, TextEdits: textEdits}}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// FixEdits returns the text edits of the fix of f applied alone to tree.
func FixEdits(tree *syntax.Tree, f rule.Finding) ([]rewrite.TextEdit, bool) {
	if f.Fix == nil {
		return nil, false
	}

	fixed, err := rewrite.ApplyFix(tree, *f.Fix)
	if err != nil {
		return nil, false
	}

	edits := rewrite.TextEdits(tree, fixed)

	return edits, len(edits) > 0
}
