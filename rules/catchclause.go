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

package rules

import (
	"fillmore-labs.com/redundancy/internal/predicate"
	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

func checkCatchClause(c syntax.Cursor, facts semantic.Facts) ([]rule.Match, error) {
	ok, err := predicate.RedundantCatch(c, facts)
	if err != nil || !ok {
		return nil, err
	}

	try := c.Parent()

	var (
		secondary []syntax.Span
		remaining int
		finally   bool
	)

	for clause := range try.Children() {
		switch clause.Kind() {
		case syntax.CatchClause:
			if clause.Index() == c.Index() {
				continue
			}

			remaining++

			if ok, _ := predicate.RedundantCatch(clause, facts); ok {
				secondary = append(secondary, clause.Span())
			}

		case syntax.FinallyClause:
			finally = true
		}
	}

	var fix *rewrite.Fix
	if remaining > 0 || finally {
		fix = &rewrite.Fix{
			Message: "Remove 'catch'",
			Edits:   []rewrite.Edit{rewrite.Remove(c.Node())},
		}
	} else {
		fix = removeTry(try, c)
	}

	return []rule.Match{{
		Span:      c.Span(),
		Secondary: secondary,
		Fix:       fix,
		Group:     group("try", try),
	}}, nil
}

// removeTry replaces a try statement with its block. Comments in front of the
// removed catch clause are kept after the block.
func removeTry(try, clause syntax.Cursor) *rewrite.Fix {
	block, ok := try.ChildOfKind(syntax.Block)
	if !ok {
		return nil
	}

	edit := rewrite.Replace(try.Node(), block.Node())
	if leading := clause.Node().Leading(); leading.HasComment() {
		edit.Carry = leading
	}

	return &rewrite.Fix{
		Message: "Remove 'try' statement",
		Edits:   []rewrite.Edit{edit},
	}
}
