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

// Package rules contains the built-in redundancy rules.
package rules

import (
	"fmt"
	"sync"

	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/syntax"
)

// Rule identifiers.
const (
	SimpleAssignmentID = "RD0001"
	CatchClauseID      = "RD0002"
	DefaultArgumentID  = "RD0003"
)

const (
	categoryPractices  = "PracticesAndImprovements"
	categoryRedundancy = "RedundanciesInCode"
)

// All returns the built-in rules in registration order.
func All() []rule.Rule {
	return []rule.Rule{
		SimpleAssignment(),
		CatchClause(),
		DefaultArgument(),
	}
}

// Default returns the registry of all built-in rules. It is built once.
func Default() *rule.Registry { return defaultRegistry() }

var defaultRegistry = sync.OnceValue(func() *rule.Registry {
	r, err := rule.NewRegistry(All()...)
	if err != nil {
		panic(fmt.Sprintf("built-in rules: %v", err))
	}

	return r
})

// SimpleAssignment reports `x |= true` and `x &= false`, which can be
// replaced with `x = true` and `x = false`.
func SimpleAssignment() rule.Rule {
	return rule.Rule{
		ID:       SimpleAssignmentID,
		Name:     "ReplaceWithSimpleAssignment",
		Message:  "Replace with simple assignment",
		Category: categoryPractices,
		Severity: rule.Info,
		Enabled:  true,
		Kinds:    syntax.Kinds(syntax.OrAssignment, syntax.AndAssignment),
		Check:    checkSimpleAssignment,
	}
}

// CatchClause reports catch clauses that only rethrow and can be removed.
func CatchClause() rule.Rule {
	return rule.Rule{
		ID:       CatchClauseID,
		Name:     "RedundantCatchClause",
		Message:  "Catch clause with a single 'throw' statement is redundant",
		Category: categoryRedundancy,
		Severity: rule.Info,
		Enabled:  true,
		Kinds:    syntax.Kinds(syntax.CatchClause),
		Check:    checkCatchClause,
	}
}

// DefaultArgument reports trailing arguments passing the default value of
// their parameter.
func DefaultArgument() rule.Rule {
	return rule.Rule{
		ID:       DefaultArgumentID,
		Name:     "RedundantArgumentDefaultValue",
		Message:  "The parameter %q has the same default value",
		Category: categoryRedundancy,
		Severity: rule.Info,
		Enabled:  true,
		Kinds:    syntax.Kinds(syntax.ArgumentList),
		Check:    checkDefaultArgument,
	}
}

func group(prefix string, c syntax.Cursor) string {
	return fmt.Sprintf("%s@%d", prefix, c.Span().Start)
}
