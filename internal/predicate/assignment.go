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

package predicate

import (
	"fmt"

	"fillmore-labs.com/redundancy/syntax"
)

// Assignment splits an assignment expression into its operands and operator.
func Assignment(c syntax.Cursor) (left, op, right syntax.Cursor, err error) {
	if c.NumChildren() != 3 {
		return syntax.Cursor{}, syntax.Cursor{}, syntax.Cursor{},
			fmt.Errorf("%w: %s with %d children", syntax.ErrMalformed, c.Kind(), c.NumChildren())
	}

	return c.Child(0), c.Child(1), c.Child(2), nil
}

// TrivialBooleanAssignment reports whether c is `x |= true` or `x &= false`.
// Only a literal right-hand side matches.
func TrivialBooleanAssignment(c syntax.Cursor) (bool, error) {
	var absorbing string
	switch c.Kind() {
	case syntax.OrAssignment:
		absorbing = "true"

	case syntax.AndAssignment:
		absorbing = "false"

	default:
		return false, nil
	}

	_, _, right, err := Assignment(c)
	if err != nil {
		return false, err
	}

	return right.Kind() == syntax.Literal && right.Text() == absorbing, nil
}
