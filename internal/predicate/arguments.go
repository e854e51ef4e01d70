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

package predicate

import (
	"fmt"
	"slices"

	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// Binding maps an argument to the parameter it is passed to.
type Binding struct {
	Arg       syntax.Cursor
	Param     int
	Parameter semantic.Parameter
}

// Call returns the invocation, object creation or element access an argument
// list belongs to.
func Call(list syntax.Cursor) (syntax.Cursor, bool) {
	call := list.Parent()

	return call, call.Is(syntax.Invocation, syntax.ObjectCreation, syntax.ElementAccess)
}

// Arguments returns the arguments of list in source order.
func Arguments(list syntax.Cursor) []syntax.Cursor {
	var args []syntax.Cursor
	for c := range list.Children() {
		if c.Kind() == syntax.Argument {
			args = append(args, c)
		}
	}

	return args
}

// ArgumentName returns the parameter name of a named argument.
func ArgumentName(arg syntax.Cursor) (string, bool) {
	nc, ok := arg.ChildOfKind(syntax.NameColon)
	if !ok || nc.NumChildren() == 0 {
		return "", false
	}

	return nc.FirstChild().Text(), true
}

// ArgumentValue returns the expression of an argument.
func ArgumentValue(arg syntax.Cursor) syntax.Cursor { return arg.LastChild() }

// Bind maps every argument of list to a parameter of sig, positionally or by
// name.
func Bind(list syntax.Cursor, sig semantic.Signature) ([]Binding, error) {
	args := Arguments(list)
	bindings := make([]Binding, 0, len(args))
	bound := make([]bool, len(sig.Params))

	for i, arg := range args {
		var p int
		if name, ok := ArgumentName(arg); ok {
			if p, ok = sig.Param(name); !ok {
				return nil, fmt.Errorf("%w: parameter %q of %s", semantic.ErrUnresolved, name, sig.Name)
			}
		} else {
			p = i
			if p >= len(sig.Params) {
				v, ok := sig.Variadic()
				if !ok {
					return nil, fmt.Errorf("%w: %d arguments for %s", semantic.ErrUnresolved, len(args), sig.Name)
				}

				p = v
			}
		}

		if bound[p] && !sig.Params[p].Variadic {
			return nil, fmt.Errorf("%w: parameter %q bound twice", syntax.ErrMalformed, sig.Params[p].Name)
		}

		bound[p] = true
		bindings = append(bindings, Binding{Arg: arg, Param: p, Parameter: sig.Params[p]})
	}

	return bindings, nil
}

// RedundantArguments returns the arguments of list, in source order, whose
// constant value equals the default value of their parameter and that are
// followed only by such arguments in parameter order. An argument bound to a
// params parameter makes all arguments non-redundant.
func RedundantArguments(list syntax.Cursor, facts semantic.Facts) ([]Binding, error) {
	call, ok := Call(list)
	if !ok {
		return nil, nil
	}

	sig, ok := facts.Signature(call)
	if !ok {
		return nil, fmt.Errorf("%w: callee of %q", semantic.ErrUnresolved, call.Text())
	}

	bindings, err := Bind(list, sig)
	if err != nil {
		return nil, err
	}

	byParam := make([]int, len(sig.Params))
	for i := range byParam {
		byParam[i] = -1
	}

	for i, b := range bindings {
		if sig.Params[b.Param].Variadic {
			return nil, nil
		}

		byParam[b.Param] = i
	}

	var redundant []Binding
	for p, i := range slices.Backward(byParam) {
		if i < 0 {
			continue
		}

		ok, err := DefaultValued(bindings[i].Arg, sig.Params[p], facts)
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		redundant = append(redundant, bindings[i])
	}

	slices.SortFunc(redundant, func(a, b Binding) int { return int(a.Arg.Index() - b.Arg.Index()) })

	return redundant, nil
}

// DefaultValued reports whether arg passes the declared default value of param.
func DefaultValued(arg syntax.Cursor, param semantic.Parameter, facts semantic.Facts) (bool, error) {
	if !param.HasDefault {
		return false, nil
	}

	if arg.NumChildren() == 0 {
		return false, fmt.Errorf("%w: empty argument", syntax.ErrMalformed)
	}

	if _, ok := arg.TokenChild("ref"); ok {
		return false, nil
	}

	if _, ok := arg.TokenChild("out"); ok {
		return false, nil
	}

	if !param.Default.Known() {
		return false, fmt.Errorf("%w: default of %q", semantic.ErrUnresolved, param.Name)
	}

	value, ok := facts.Constant(ArgumentValue(arg))
	if !ok {
		return false, nil
	}

	// Values are compared after the conversion to the parameter type. Without
	// a known type, like for object parameters, only identical types match.
	value, ok = value.Convert(param.Type)
	if !ok {
		return false, nil
	}

	return value.Equal(param.Default), nil
}
