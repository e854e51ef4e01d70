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

package run

import (
	"log/slog"
	"runtime"

	"fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/config"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
)

// Options defines the configurable parameters for processing C# files.
type Options struct {
	// Registry holds the rules to run.
	Registry *rule.Registry

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Include and Exclude are doublestar patterns, relative to the searched directories.
	Include, Exclude []string

	// Jobs limits the number of files processed in parallel.
	Jobs int

	// MaxPasses limits the analyze and fix rounds per file, 0 selects the default.
	MaxPasses int

	// Fix computes the fixed version of every file with findings.
	Fix bool

	// Write stores fixed files. It implies Fix.
	Write bool

	// Logger receives diagnostic output, nil discards it.
	Logger *slog.Logger
}

// DefaultOptions returns a new [Options] instance with default values.
func DefaultOptions() *Options {
	defaults := config.Default()

	return &Options{
		Registry: rules.Default(),
		Behavior: config.DefaultBehavior(),
		Include:  defaults.Include,
		Exclude:  defaults.Exclude,
		Jobs:     runtime.GOMAXPROCS(0),
	}
}

// FromConfig returns options for the settings of a configuration file.
func FromConfig(f *config.File) (*Options, error) {
	registry, err := f.Configure(rules.Default())
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	o.Registry = registry
	o.Behavior = f.Behavior()
	o.Include, o.Exclude = f.Include, f.Exclude
	o.MaxPasses = f.MaxPasses

	if f.Jobs > 0 {
		o.Jobs = f.Jobs
	}

	return o, nil
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	enabled := make([]string, 0, len(o.Registry.Rules()))
	for _, r := range o.Registry.Rules() {
		if r.Enabled {
			enabled = append(enabled, r.ID)
		}
	}

	return slog.GroupValue(
		slog.Any("rules", enabled),
		slog.Any("include", o.Include),
		slog.Any("exclude", o.Exclude),
		slog.Int("jobs", o.Jobs),
		slog.Bool("fix", o.Fix || o.Write),
		slog.Bool("write", o.Write),
		o.engineOptions().LogAttr(),
	)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

func (o *Options) engineOptions() engine.Options {
	return engine.Options{
		engine.WithLogger(o.Logger),
		engine.WithSuppressions(o.Behavior.Enabled(config.Suppressions)),
		engine.WithGenerated(o.Behavior.Enabled(config.IncludeGenerated)),
		engine.WithMaxPasses(o.MaxPasses),
	}
}

func (o *Options) jobs() int {
	if o.Jobs <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Jobs
}
