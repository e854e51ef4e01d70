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

package sema

import (
	"fillmore-labs.com/redundancy/internal/predicate"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// Signature implements [semantic.Facts]. Overloads are chosen by
// applicability to the arguments; an ambiguous call is unresolved.
func (m *Model) Signature(call syntax.Cursor) (semantic.Signature, bool) {
	list, ok := call.ChildOfKind(syntax.ArgumentList)
	if !ok {
		return semantic.Signature{}, false
	}

	var candidates []callable
	switch call.Kind() {
	case syntax.Invocation:
		candidates = m.methods(call, call.FirstChild())

	case syntax.ObjectCreation:
		for d := range call.Children() {
			if !d.Is(syntax.TypeName, syntax.Identifier) {
				continue
			}

			if name, ok := m.resolve(d.Text()); ok {
				if cl, ok := m.classes[name]; ok {
					candidates = cl.ctors
				}
			}

			break
		}

	case syntax.ElementAccess:
		if receiver := call.FirstChild(); receiver.Node().Is("this") {
			candidates = m.inherited(enclosingClass(call), func(cl *class) []callable { return cl.indexers })
		}
	}

	var (
		found semantic.Signature
		count int
	)

	for _, c := range candidates {
		sig, ok := m.signature(c)
		if !ok || !applicable(sig, list) {
			continue
		}

		found = sig
		count++
	}

	return found, count == 1
}

// methods returns the methods an invocation target may refer to.
func (m *Model) methods(call, target syntax.Cursor) []callable {
	switch target.Kind() {
	case syntax.Identifier:
		name := target.Text()

		return m.inherited(enclosingClass(call), func(cl *class) []callable { return cl.methods[name] })

	case syntax.MemberAccess:
		if target.NumChildren() != 3 {
			return nil
		}

		receiver, name := target.Child(0), target.Child(2).Text()

		switch {
		case receiver.Node().Is("this"), receiver.Node().Is("base"):
			return m.inherited(enclosingClass(call), func(cl *class) []callable { return cl.methods[name] })

		case receiver.Is(syntax.Identifier, syntax.TypeName):
			if className, ok := m.resolve(receiver.Text()); ok {
				return m.inherited(className, func(cl *class) []callable { return cl.methods[name] })
			}
		}

		// unknown receiver type, consider every declaration
		var all []callable
		for _, cl := range m.classes {
			all = append(all, cl.methods[name]...)
		}

		return all
	}

	return nil
}

// inherited collects members of a class and its base classes.
func (m *Model) inherited(className string, members func(*class) []callable) []callable {
	var result []callable
	for range maxConstantDepth {
		cl, ok := m.classes[className]
		if !ok {
			break
		}

		result = append(result, members(cl)...)

		if className, ok = m.base(className); !ok || className == object {
			break
		}
	}

	return result
}

func enclosingClass(c syntax.Cursor) string {
	for decl := range c.Enclosing(syntax.ClassDecl) {
		if id, ok := decl.ChildOfKind(syntax.Identifier); ok {
			return id.Text()
		}
	}

	return ""
}

// signature evaluates the parameter list of a callable.
func (m *Model) signature(c callable) (semantic.Signature, bool) {
	sig := semantic.Signature{Name: c.name}

	for p := range c.params.Children() {
		if p.Kind() != syntax.Parameter {
			continue
		}

		var (
			param    semantic.Parameter
			typeName string
		)

		for d := range p.Children() {
			switch {
			case d.Kind() == syntax.TypeName:
				typeName = d.Text()

			case d.Kind() == syntax.Identifier:
				// A type spelled as an identifier precedes the name.
				if param.Name != "" && typeName == "" {
					typeName = param.Name
				}

				param.Name = d.Text()

			case d.Node().Is("params"):
				param.Variadic = true
			}
		}

		if param.Name == "" {
			return semantic.Signature{}, false
		}

		param.Type = semantic.BasicType(typeName)

		if init, ok := initializer(p); ok {
			param.HasDefault = true
			if v, ok := m.Constant(init); ok {
				param.Default, _ = v.Convert(param.Type)
			}
		}

		sig.Params = append(sig.Params, param)
	}

	return sig, true
}

// applicable reports whether the arguments in list can be bound to sig with
// every required parameter supplied.
func applicable(sig semantic.Signature, list syntax.Cursor) bool {
	bindings, err := predicate.Bind(list, sig)
	if err != nil {
		return false
	}

	supplied := make([]bool, len(sig.Params))
	for _, b := range bindings {
		supplied[b.Param] = true
	}

	for i, p := range sig.Params {
		if !supplied[i] && !p.HasDefault && !p.Variadic {
			return false
		}
	}

	return true
}
