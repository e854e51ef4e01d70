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

// Package semantic defines the read-only semantic queries redundancy rules
// may ask about a syntax tree.
package semantic

import (
	"errors"

	"fillmore-labs.com/redundancy/syntax"
)

// ErrUnresolved is returned when a semantic fact cannot be determined.
var ErrUnresolved = errors.New("unresolved semantic fact")

// Facts answers semantic questions about the nodes of one tree. Every query
// reports false when the answer is unknown; callers must treat an unknown
// answer as "rule does not apply".
type Facts interface {
	// Constant returns the compile-time value of an expression.
	Constant(expr syntax.Cursor) (Value, bool)

	// TypeOf returns the type named by a type syntax node, or the caught type
	// of a catch clause or catch declaration.
	TypeOf(n syntax.Cursor) (Type, bool)

	// DerivesFrom reports whether t is identical to or derived from base.
	// ok is false if the relation can not be decided.
	DerivesFrom(t, base Type) (derived, ok bool)

	// Signature resolves the callee of an invocation, object creation or
	// element access.
	Signature(call syntax.Cursor) (Signature, bool)

	// Generated reports whether n is part of generated code.
	Generated(n syntax.Cursor) bool
}

// Binder computes the facts of a tree.
type Binder func(tree *syntax.Tree) (Facts, error)

// Type is an opaque resolved type.
type Type interface {
	String() string
}

// Parameter describes a declared parameter.
type Parameter struct {
	Name string

	// Type is the declared type, [UnknownType] unless it is a built-in
	// value type or string.
	Type Basic

	// Default is the declared default converted to Type.
	Default    Value
	HasDefault bool
	Variadic   bool
}

// Signature is a resolved callee with its parameters in declared order.
type Signature struct {
	Name   string
	Params []Parameter
}

// Param returns the index of the parameter with the given name.
func (s Signature) Param(name string) (int, bool) {
	for i, p := range s.Params {
		if p.Name == name {
			return i, true
		}
	}

	return -1, false
}

// Variadic returns the index of the params parameter, if present.
func (s Signature) Variadic() (int, bool) {
	if n := len(s.Params); n > 0 && s.Params[n-1].Variadic {
		return n - 1, true
	}

	return -1, false
}
