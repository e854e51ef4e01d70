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

package rule

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/redundancy/syntax"
)

var (
	// ErrInvalidRule is returned for a rule without ID, name, kinds or predicate.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrDuplicateRule is returned when two rules share an ID or a name.
	ErrDuplicateRule = errors.New("duplicate rule")
)

// Registry is an immutable set of rules with a dispatch table indexed by
// node kind.
type Registry struct {
	rules  []*Rule
	byKind [syntax.NumKinds][]*Rule
	byKey  map[string]*Rule
	kinds  syntax.KindSet
}

// NewRegistry validates rules and builds the dispatch table.
func NewRegistry(rules ...Rule) (*Registry, error) {
	rules = slices.Clone(rules)

	r := &Registry{
		rules: make([]*Rule, 0, len(rules)),
		byKey: make(map[string]*Rule, 2*len(rules)),
	}

	for i := range rules {
		rl := &rules[i]

		if err := validate(rl); err != nil {
			return nil, err
		}

		for _, key := range [...]string{rl.ID, rl.Name} {
			key = strings.ToLower(key)
			if _, ok := r.byKey[key]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, key)
			}

			r.byKey[key] = rl
		}

		r.rules = append(r.rules, rl)

		if !rl.Enabled {
			continue
		}

		for k := range rl.Kinds.All() {
			r.byKind[k] = append(r.byKind[k], rl)
		}

		r.kinds |= rl.Kinds
	}

	return r, nil
}

func validate(rl *Rule) error {
	switch {
	case rl.ID == "" || rl.Name == "":
		return fmt.Errorf("%w: missing identifier", ErrInvalidRule)

	case rl.Kinds.Empty():
		return fmt.Errorf("%w: %s subscribes to no node kinds", ErrInvalidRule, rl.ID)

	case rl.Check == nil:
		return fmt.Errorf("%w: %s has no predicate", ErrInvalidRule, rl.ID)

	case rl.Kinds.Contains(syntax.Invalid):
		return fmt.Errorf("%w: %s subscribes to invalid kind", ErrInvalidRule, rl.ID)
	}

	return nil
}

// Rules returns all registered rules, enabled or not, in registration order.
func (r *Registry) Rules() []*Rule { return slices.Clone(r.rules) }

// ForKind returns the enabled rules subscribed to kind k.
func (r *Registry) ForKind(k syntax.Kind) []*Rule {
	if int(k) >= syntax.NumKinds {
		return nil
	}

	return r.byKind[k]
}

// Kinds returns the union of the kinds enabled rules subscribe to.
func (r *Registry) Kinds() syntax.KindSet { return r.kinds }

// Lookup finds a rule by ID or name, ignoring case.
func (r *Registry) Lookup(key string) (*Rule, bool) {
	rl, ok := r.byKey[strings.ToLower(key)]

	return rl, ok
}

// Configure returns a new registry with every rule replaced by f(rule).
func (r *Registry) Configure(f func(Rule) Rule) (*Registry, error) {
	rules := make([]Rule, 0, len(r.rules))
	for _, rl := range r.rules {
		rules = append(rules, f(*rl))
	}

	return NewRegistry(rules...)
}
