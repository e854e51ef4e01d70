// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package config

// RuleFlags selects the built-in rules.
type RuleFlags uint8

const (
	// SimpleAssignmentRule reports compound boolean assignments with a constant operand.
	SimpleAssignmentRule RuleFlags = 1 << iota

	// CatchClauseRule reports catch clauses that only rethrow.
	CatchClauseRule

	// DefaultArgumentRule reports arguments equal to the parameter default.
	DefaultArgumentRule

	// AllRules enables every built-in rule.
	AllRules = SimpleAssignmentRule | CatchClauseRule | DefaultArgumentRule
)

// Config represents behavioral options.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// Suppressions specifies whether suppression comments are honored.
	Suppressions
)

// DefaultRules returns the rules enabled by default.
func DefaultRules() BitMask[RuleFlags] { return NewBitMask(AllRules) }

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() BitMask[Config] { return NewBitMask(Suppressions) }
