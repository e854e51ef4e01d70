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
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/redundancy/internal/config"
)

// DefaultPattern selects the C# files in a package directory.
const DefaultPattern = "*.cs"

// runOptions defines the configurable parameters for the analyzer.
type runOptions struct {
	// rules selects the rules to run.
	rules config.BitMask[config.RuleFlags]

	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]

	// pattern is the doublestar pattern of C# files relative to a package directory.
	pattern string
}

func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

func defaultRunOptions() *runOptions {
	return &runOptions{
		rules:    config.DefaultRules(),
		behavior: config.DefaultBehavior(),
		pattern:  DefaultPattern,
	}
}

func (r *runOptions) analyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}
}
