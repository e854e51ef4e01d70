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

	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// IsPureRethrow reports whether the body of a catch clause consists of
// exactly one `throw;` without expression.
func IsPureRethrow(clause syntax.Cursor) bool {
	body := clause.LastChild()
	if body.Kind() != syntax.Block || body.NumChildren() != 3 {
		return false
	}

	stmt := body.Child(1)

	return stmt.Kind() == syntax.ThrowStatement && stmt.NumChildren() == 2
}

// RedundantCatch reports whether removing clause leaves the behavior of its
// try statement unchanged: the clause only rethrows, the try statement has no
// finally clause, and no later clause that handles the exception could catch
// it instead.
func RedundantCatch(clause syntax.Cursor, facts semantic.Facts) (bool, error) {
	try := clause.Parent()
	if try.Kind() != syntax.TryStatement {
		return false, fmt.Errorf("%w: catch clause in %s", syntax.ErrMalformed, try.Kind())
	}

	if _, ok := try.ChildOfKind(syntax.FinallyClause); ok {
		return false, nil
	}

	if !IsPureRethrow(clause) {
		return false, nil
	}

	if _, ok := clause.ChildOfKind(syntax.CatchFilter); ok {
		return false, nil
	}

	caught, typed, err := CaughtType(clause, facts)
	if err != nil {
		return false, err
	}

	for later := clause.NextSibling(); later.Valid(); later = later.NextSibling() {
		if later.Kind() != syntax.CatchClause || IsPureRethrow(later) {
			continue
		}

		if !typed {
			return false, nil
		}

		handler, handlerTyped, err := CaughtType(later, facts)
		if err != nil {
			return false, err
		}

		if !handlerTyped {
			return false, nil
		}

		derived, ok := facts.DerivesFrom(caught, handler)
		if !ok {
			return false, fmt.Errorf("%w: %s derives from %s", semantic.ErrUnresolved, caught, handler)
		}

		if derived {
			return false, nil
		}
	}

	return true, nil
}

// CaughtType returns the declared type of a catch clause. typed is false for
// a clause catching everything.
func CaughtType(clause syntax.Cursor, facts semantic.Facts) (t semantic.Type, typed bool, err error) {
	decl, ok := clause.ChildOfKind(syntax.CatchDeclaration)
	if !ok {
		return nil, false, nil
	}

	t, ok = facts.TypeOf(decl)
	if !ok {
		return nil, true, fmt.Errorf("%w: type of %q", semantic.ErrUnresolved, decl.Text())
	}

	return t, true, nil
}
