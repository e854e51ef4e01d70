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

package engine

import "log/slog"

// Option configures [Analyze] and [FixAll].
type Option interface {
	apply(o *options)
	LogAttr() slog.Attr
}

type options struct {
	logger       *slog.Logger
	suppressions bool
	generated    bool
	maxPasses    int
}

func makeOptions(opts []Option) options {
	o := options{suppressions: true, maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&o)
		}
	}

	return o
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

func (o Options) apply(r *options) {
	for _, opt := range o {
		if opt != nil {
			opt.apply(r)
		}
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt != nil {
			as = append(as, opt.LogAttr())
		}
	}

	return slog.Attr{Key: "engine", Value: slog.GroupValue(as...)}
}

// WithLogger is an [Option] to log predicate failures at debug level.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *options) { r.logger = o.logger }

func (o loggerOption) LogAttr() slog.Attr { return slog.Bool("logger", o.logger != nil) }

// WithSuppressions is an [Option] to configure whether suppression comments are honored.
func WithSuppressions(suppressions bool) Option {
	return suppressionsOption{suppressions: suppressions}
}

type suppressionsOption struct{ suppressions bool }

func (o suppressionsOption) apply(r *options) { r.suppressions = o.suppressions }

func (o suppressionsOption) LogAttr() slog.Attr { return slog.Bool("suppressions", o.suppressions) }

// WithMaxPasses is an [Option] to limit the number of analyze and fix rounds of [FixAll].
func WithMaxPasses(maxPasses int) Option { return maxPassesOption{maxPasses: maxPasses} }

type maxPassesOption struct{ maxPasses int }

func (o maxPassesOption) apply(r *options) {
	if o.maxPasses > 0 {
		r.maxPasses = o.maxPasses
	}
}

func (o maxPassesOption) LogAttr() slog.Attr { return slog.Int("max-passes", o.maxPasses) }

// WithGenerated is an [Option] to configure whether generated code is analyzed.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *options) { r.generated = o.generated }

func (o generatedOption) LogAttr() slog.Attr { return slog.Bool("generated", o.generated) }
