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
	"flag"

	"fillmore-labs.com/redundancy/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// Passing a nil flag set registers the flags with [flag.CommandLine].
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewRuleValue(&r.rules, config.SimpleAssignmentRule), "simple-assignment", "report compound boolean assignments with a constant operand")
	flags.Var(NewRuleValue(&r.rules, config.CatchClauseRule), "catch-clause", "report catch clauses that only rethrow")
	flags.Var(NewRuleValue(&r.rules, config.DefaultArgumentRule), "default-argument", "report arguments passing the parameter default")
	flags.Var(NewBehaviorValue(&r.behavior, config.Suppressions), "suppressions", "honor suppression comments")
	flags.Var(NewBehaviorValue(&r.behavior, config.IncludeGenerated), "generated", "check generated code")
	flags.StringVar(&r.pattern, "pattern", r.pattern, "doublestar `pattern` of C# files in package directories")
}
