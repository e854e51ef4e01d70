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

func checkDefaultArgument(c syntax.Cursor, facts semantic.Facts) ([]rule.Match, error) {
	redundant, err := predicate.RedundantArguments(c, facts)
	if err != nil || len(redundant) == 0 {
		return nil, err
	}

	matches := make([]rule.Match, 0, len(redundant))
	for _, b := range redundant {
		var (
			removed   = make(map[int32]struct{})
			secondary []syntax.Span
		)

		for _, o := range redundant {
			if o.Param < b.Param {
				continue
			}

			removed[o.Arg.Index()] = struct{}{}

			if o.Arg.Index() != b.Arg.Index() {
				secondary = append(secondary, o.Arg.Span())
			}
		}

		fix := &rewrite.Fix{
			Message: "Remove redundant arguments",
			Edits:   []rewrite.Edit{rewrite.Replace(c.Node(), withoutArguments(c, removed))},
		}

		matches = append(matches, rule.Match{
			Span:      b.Arg.Span(),
			Secondary: secondary,
			Args:      []any{b.Parameter.Name},
			Fix:       fix,
			Group:     group("arguments", c),
		})
	}

	return matches, nil
}

// withoutArguments rebuilds an argument list without the removed arguments.
// Each kept argument except the last keeps the separator that followed it. An
// empty list loses the line breaks inside its parentheses.
func withoutArguments(list syntax.Cursor, removed map[int32]struct{}) *syntax.Node {
	var (
		opening, closing *syntax.Node
		kept             []syntax.Cursor
	)

	for d := range list.Children() {
		switch {
		case d.Kind() == syntax.Argument:
			if _, ok := removed[d.Index()]; !ok {
				kept = append(kept, d)
			}

		case opening == nil && d.Node().IsToken() && d.ChildIndex() == 0:
			opening = d.Node()

		case d.Node().IsToken() && !d.NextSibling().Valid():
			closing = d.Node()
		}
	}

	if len(kept) == 0 {
		if !opening.Trailing().HasComment() {
			opening = opening.WithTrailing(nil)
		}

		if !closing.Leading().HasComment() {
			closing = closing.WithLeading(nil)
		}
	}

	children := make([]*syntax.Node, 0, 2*len(kept)+1)
	children = append(children, opening)

	for i, arg := range kept {
		children = append(children, arg.Node())

		if i == len(kept)-1 {
			break
		}

		if sep := arg.NextSibling(); sep.Valid() && sep.Node().Is(",") {
			children = append(children, sep.Node())
		} else {
			children = append(children, syntax.NewToken(syntax.Token, nil, ",", syntax.ScanTrivia(" ")))
		}
	}

	children = append(children, closing)

	return syntax.NewNode(syntax.ArgumentList, children...)
}
