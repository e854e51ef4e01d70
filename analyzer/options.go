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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/redundancy/internal/config"
)

// Option configures specific behavior of the redundancy [analysis.Analyzer].
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSimpleAssignment is an [Option] to configure the compound boolean assignment rule.
func WithSimpleAssignment(enabled bool) Option {
	return ruleOption{key: "simple-assignment", flag: config.SimpleAssignmentRule, enabled: enabled}
}

// WithCatchClause is an [Option] to configure the redundant catch clause rule.
func WithCatchClause(enabled bool) Option {
	return ruleOption{key: "catch-clause", flag: config.CatchClauseRule, enabled: enabled}
}

// WithDefaultArgument is an [Option] to configure the redundant default argument rule.
func WithDefaultArgument(enabled bool) Option {
	return ruleOption{key: "default-argument", flag: config.DefaultArgumentRule, enabled: enabled}
}

type ruleOption struct {
	key     string
	flag    config.RuleFlags
	enabled bool
}

func (o ruleOption) apply(r *runOptions) {
	r.rules.Set(o.flag, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithSuppressions is an [Option] to configure whether suppression comments are honored.
func WithSuppressions(suppressions bool) Option {
	return suppressionsOption{suppressions: suppressions}
}

type suppressionsOption struct{ suppressions bool }

func (o suppressionsOption) apply(r *runOptions) {
	r.behavior.Set(config.Suppressions, o.suppressions)
}

func (o suppressionsOption) LogAttr() slog.Attr {
	return slog.Bool("suppressions", o.suppressions)
}

// WithGenerated is an [Option] to configure diagnostics reporting for generated code.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithPattern is an [Option] to select the C# files relative to a package directory.
// An empty pattern only analyzes [analysis.Pass.OtherFiles].
func WithPattern(pattern string) Option { return patternOption{pattern: pattern} }

type patternOption struct{ pattern string }

func (o patternOption) apply(r *runOptions) {
	r.pattern = o.pattern
}

func (o patternOption) LogAttr() slog.Attr {
	return slog.String("pattern", o.pattern)
}
