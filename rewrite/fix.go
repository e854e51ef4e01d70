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

// Package rewrite applies fixes to syntax trees. Rewrites are pure: the input
// tree is never modified, and only the nodes on the path from an edited node
// to the root are reallocated.
package rewrite

import (
	"errors"
	"fmt"

	"fillmore-labs.com/redundancy/syntax"
)

// ErrUnresolvedReplacement is returned when a fix references a node that is
// not part of the tree it is applied to.
var ErrUnresolvedReplacement = errors.New("fix target not found in tree")

// Fix is a described set of edits.
type Fix struct {
	Message string
	Edits   []Edit
}

// Edit replaces or removes one node, identified by pointer.
type Edit struct {
	// Target is the node to be edited.
	Target *syntax.Node

	// Replacement is spliced in place of Target. It inherits the leading and
	// trailing trivia of Target. A nil Replacement removes Target.
	Replacement *syntax.Node

	// Carry is moved in front of the next token after Target.
	Carry syntax.Trivia
}

// Replace returns an edit replacing target with repl.
func Replace(target, repl *syntax.Node) Edit {
	return Edit{Target: target, Replacement: repl}
}

// Remove returns an edit removing target. Comments and directives in the
// leading trivia of target move to the next token.
func Remove(target *syntax.Node) Edit {
	return Edit{Target: target}
}

// OverlapError is raised as a panic when edits of a bulk apply overlap.
type OverlapError struct {
	First, Second syntax.Span
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits at [%d, %d) and [%d, %d)",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}
