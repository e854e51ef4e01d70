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

package gclplugin

import "fillmore-labs.com/redundancy/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SimpleAssignment enables the compound boolean assignment rule.
	SimpleAssignment *bool `json:"simple-assignment,omitzero"`
	// CatchClause enables the redundant catch clause rule.
	CatchClause *bool `json:"catch-clause,omitzero"`
	// DefaultArgument enables the redundant default argument rule.
	DefaultArgument *bool `json:"default-argument,omitzero"`
	// Suppressions honors suppression comments.
	Suppressions *bool `json:"suppressions,omitzero"`
	// Generated includes generated C# code.
	Generated *bool `json:"generated,omitzero"`
	// Pattern selects the C# files relative to package directories.
	Pattern *string `json:"pattern,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option]s.
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.SimpleAssignment, analyzer.WithSimpleAssignment)
	opts = appendOption(opts, s.CatchClause, analyzer.WithCatchClause)
	opts = appendOption(opts, s.DefaultArgument, analyzer.WithDefaultArgument)
	opts = appendOption(opts, s.Suppressions, analyzer.WithSuppressions)
	opts = appendOption(opts, s.Generated, analyzer.WithGenerated)
	opts = appendOption(opts, s.Pattern, analyzer.WithPattern)

	return opts
}

func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
