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

import (
	"regexp"
	"strings"

	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/syntax"
)

// linterName suppresses every rule in a nolint comment.
const linterName = "redundancy"

var (
	nolintPattern    = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	resharperPattern = regexp.MustCompile(`^//\s*ReSharper\s+(disable|restore)(\s+once)?\s+([\w\s,.-]+)`)
	pragmaPattern    = regexp.MustCompile(`^#\s*pragma\s+warning\s+(disable|restore)\b([^/]*)`)
)

// suppressions is the suppression state threaded through one traversal.
// Node scoped markers live on a stack, region markers are counters keyed by
// lower case rule ID or name.
type suppressions struct {
	once    []string
	regions map[string]int
	all     int
}

func newSuppressions() *suppressions {
	return &suppressions{regions: make(map[string]int)}
}

// enter processes the markers in front of c and returns the stack mark to
// restore on exit.
func (s *suppressions) enter(c syntax.Cursor) int {
	mark := len(s.once)

	n := c.Node()
	if p := c.Parent(); !p.Valid() || p.Node().FirstToken() != n.FirstToken() {
		for _, text := range n.Leading().Comments() {
			s.marker(text, true)
		}
	}

	if p := c.Parent(); !p.Valid() || p.Node().LastToken() != n.LastToken() {
		for _, text := range n.Trailing().Comments() {
			if m := nolintPattern.FindStringSubmatch(text); m != nil {
				s.push(m[1])
			}
		}
	}

	return mark
}

// exit pops the node scoped markers of c and processes region markers
// following it.
func (s *suppressions) exit(c syntax.Cursor, mark int) {
	s.once = s.once[:mark]

	n := c.Node()
	if p := c.Parent(); p.Valid() && p.Node().LastToken() == n.LastToken() {
		return
	}

	for _, text := range n.Trailing().Comments() {
		s.marker(text, false)
	}
}

func (s *suppressions) marker(text string, leading bool) {
	if m := pragmaPattern.FindStringSubmatch(text); m != nil {
		ids := fields(m[2])
		if len(ids) == 0 {
			s.region(m[1] == "disable", "")

			return
		}

		for _, id := range ids {
			s.region(m[1] == "disable", id)
		}

		return
	}

	if m := resharperPattern.FindStringSubmatch(text); m != nil {
		once := m[2] != ""
		if once && !leading {
			return
		}

		for _, name := range fields(m[3]) {
			if once {
				if m[1] == "disable" {
					s.once = append(s.once, name)
				}

				continue
			}

			s.region(m[1] == "disable", name)
		}

		return
	}

	if leading {
		if m := nolintPattern.FindStringSubmatch(text); m != nil {
			s.push(m[1])
		}
	}
}

func (s *suppressions) push(list string) {
	for _, name := range fields(list) {
		if name == linterName || name == "all" {
			name = ""
		}

		s.once = append(s.once, name)
	}
}

func (s *suppressions) region(disable bool, key string) {
	delta := -1
	if disable {
		delta = 1
	}

	if key == "" {
		s.all = max(s.all+delta, 0)

		return
	}

	s.regions[key] = max(s.regions[key]+delta, 0)
}

// suppressed reports whether findings of r are currently suppressed.
func (s *suppressions) suppressed(r *rule.Rule) bool {
	if s.all > 0 {
		return true
	}

	id, name := strings.ToLower(r.ID), strings.ToLower(r.Name)

	if s.regions[id] > 0 || s.regions[name] > 0 {
		return true
	}

	for _, key := range s.once {
		if key == "" || key == id || key == name {
			return true
		}
	}

	return false
}

func fields(list string) []string {
	return strings.FieldsFunc(strings.ToLower(list), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
}
