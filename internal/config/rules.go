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

package config

import (
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
)

var ruleFlags = map[string]RuleFlags{
	rules.SimpleAssignmentID: SimpleAssignmentRule,
	rules.CatchClauseID:      CatchClauseRule,
	rules.DefaultArgumentID:  DefaultArgumentRule,
}

// SelectRules returns reg with exactly the built-in rules in flags enabled.
// Rules without a flag keep their state.
func SelectRules(reg *rule.Registry, flags BitMask[RuleFlags]) (*rule.Registry, error) {
	return reg.Configure(func(r rule.Rule) rule.Rule {
		if flag, ok := ruleFlags[r.ID]; ok {
			r.Enabled = flags.Enabled(flag)
		}

		return r
	})
}
