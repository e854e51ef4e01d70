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

func checkSimpleAssignment(c syntax.Cursor, _ semantic.Facts) ([]rule.Match, error) {
	ok, err := predicate.TrivialBooleanAssignment(c)
	if err != nil || !ok {
		return nil, err
	}

	fix := &rewrite.Fix{
		Message: "Replace with simple assignment",
		Edits:   []rewrite.Edit{rewrite.Replace(c.Node(), simpleAssignment(c))},
	}

	return []rule.Match{{Span: c.Span(), Fix: fix}}, nil
}

// simpleAssignment replaces the compound operator of an assignment with `=`,
// keeping both operands and the trivia around the operator.
func simpleAssignment(c syntax.Cursor) *syntax.Node {
	n := c.Node()
	left, op, right := n.Child(0), n.Child(1), n.Child(2)

	assign := syntax.NewToken(syntax.Token, op.Leading(), "=", op.Trailing())

	return syntax.NewNode(syntax.SimpleAssignment, left, assign, right)
}
