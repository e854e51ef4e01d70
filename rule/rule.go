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

// Package rule defines redundancy rules, their findings and the registry the
// match engine dispatches from.
package rule

import (
	"fmt"

	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// Predicate inspects a node of a subscribed kind and returns its matches.
// An error means the rule does not apply to the node.
type Predicate func(c syntax.Cursor, facts semantic.Facts) ([]Match, error)

// Rule is a stateless detection rule.
type Rule struct {
	// ID is the stable identifier, e.g. "RD0001".
	ID string

	// Name is the descriptive identifier used by suppression comments.
	Name string

	// Message is the format of finding messages, applied to [Finding.Args].
	Message string

	// Category groups related rules.
	Category string

	// Severity is the level findings are reported with.
	Severity Severity

	// Enabled reports whether the rule runs.
	Enabled bool

	// Kinds are the node kinds the rule subscribes to.
	Kinds syntax.KindSet

	// Check is the rule's predicate.
	Check Predicate
}

// Match is a single predicate result.
type Match struct {
	Span      syntax.Span
	Secondary []syntax.Span
	Args      []any
	Fix       *rewrite.Fix

	// Group collects findings of which at most one fix can be applied at a time.
	Group string
}

// Finding is a match reported for a rule.
type Finding struct {
	Rule      *Rule
	Span      syntax.Span
	Secondary []syntax.Span
	Args      []any
	Fix       *rewrite.Fix
	Group     string
}

// Message returns the formatted message of the finding.
func (f Finding) Message() string {
	if len(f.Args) == 0 {
		return f.Rule.Message
	}

	return fmt.Sprintf(f.Rule.Message, f.Args...)
}

// NewFinding creates a finding of r from a match.
func NewFinding(r *Rule, m Match) Finding {
	return Finding{
		Rule:      r,
		Span:      m.Span,
		Secondary: m.Secondary,
		Args:      m.Args,
		Fix:       m.Fix,
		Group:     m.Group,
	}
}
