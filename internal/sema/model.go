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

// Package sema implements [semantic.Facts] for a single C# syntax tree.
//
// The model is name based: it knows the classes declared in the tree with
// their base classes, methods, constructors, indexers and constants, plus the
// exception hierarchy of the base class library. Anything it can not resolve
// is reported as unknown.
package sema

import (
	"iter"

	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// Model holds the semantic facts of one tree.
type Model struct {
	tree      *syntax.Tree
	classes   map[string]*class
	aliases   map[string]string
	generated []bool
}

var _ semantic.Facts = (*Model)(nil)

type class struct {
	name     string
	decl     syntax.Cursor
	bases    []string
	methods  map[string][]callable
	ctors    []callable
	indexers []callable
	consts   map[string]syntax.Cursor
}

type callable struct {
	name   string
	params syntax.Cursor
}

// Binder is a [semantic.Binder] returning a [Model].
func Binder(tree *syntax.Tree) (semantic.Facts, error) {
	return Bind(tree)
}

// Bind builds the semantic model of tree.
func Bind(tree *syntax.Tree) (*Model, error) {
	m := &Model{
		tree:    tree,
		classes: make(map[string]*class),
		aliases: make(map[string]string),
	}

	for c := range tree.Root().Preorder(syntax.UsingDirective, syntax.ClassDecl) {
		switch c.Kind() {
		case syntax.UsingDirective:
			m.addAlias(c)

		case syntax.ClassDecl:
			m.addClass(c)
		}
	}

	m.generated = markGenerated(tree)

	return m, nil
}

func (m *Model) addAlias(c syntax.Cursor) {
	var (
		alias  string
		target []byte
		seen   bool
	)

	for t := range c.Preorder() {
		n := t.Node()
		if !n.IsToken() {
			continue
		}

		switch {
		case n.Is("="):
			seen = true

		case n.Is(";"), n.Is("using"), n.Is("static"), n.Is("global"):

		case !seen:
			alias = n.Text()

		default:
			target = append(target, n.Text()...)
		}
	}

	if seen && alias != "" && len(target) > 0 {
		m.aliases[alias] = simpleName(string(target))
	}
}

func (m *Model) addClass(c syntax.Cursor) {
	cl := &class{
		decl:    c,
		methods: make(map[string][]callable),
		consts:  make(map[string]syntax.Cursor),
	}

	for d := range c.Children() {
		switch d.Kind() {
		case syntax.Identifier:
			if cl.name == "" {
				cl.name = d.Text()
			}

		case syntax.BaseList:
			for b := range d.Children() {
				if b.Is(syntax.TypeName, syntax.Identifier) {
					cl.bases = append(cl.bases, simpleName(b.Text()))
				}
			}

		case syntax.DeclarationList:
			m.addMembers(cl, d)
		}
	}

	if cl.name == "" {
		return
	}

	if _, ok := m.classes[cl.name]; ok {
		// partial classes share one entry
		m.merge(m.classes[cl.name], cl)

		return
	}

	m.classes[cl.name] = cl
}

func (m *Model) merge(into, from *class) {
	if len(into.bases) == 0 {
		into.bases = from.bases
	}

	for name, ms := range from.methods {
		into.methods[name] = append(into.methods[name], ms...)
	}

	into.ctors = append(into.ctors, from.ctors...)
	into.indexers = append(into.indexers, from.indexers...)

	for name, c := range from.consts {
		into.consts[name] = c
	}
}

func (m *Model) addMembers(cl *class, list syntax.Cursor) {
	for d := range list.Children() {
		switch d.Kind() {
		case syntax.MethodDecl:
			if params, ok := d.ChildOfKind(syntax.ParameterList); ok {
				if name := params.PrevSibling(); name.Kind() == syntax.Identifier {
					cl.methods[name.Text()] = append(cl.methods[name.Text()], callable{name.Text(), params})
				}
			}

		case syntax.ConstructorDecl:
			if params, ok := d.ChildOfKind(syntax.ParameterList); ok {
				cl.ctors = append(cl.ctors, callable{cl.name, params})
			}

		case syntax.IndexerDecl:
			if params, ok := d.ChildOfKind(syntax.ParameterList); ok {
				cl.indexers = append(cl.indexers, callable{"this[]", params})
			}

		case syntax.FieldDecl:
			if _, ok := d.TokenChild("const"); !ok {
				continue
			}

			if decl, ok := d.ChildOfKind(syntax.VariableDeclaration); ok {
				for name, init := range declarators(decl) {
					cl.consts[name] = init
				}
			}
		}
	}
}

// declarators yields the names and initializer expressions of a variable
// declaration.
func declarators(decl syntax.Cursor) iter.Seq2[string, syntax.Cursor] {
	return func(yield func(string, syntax.Cursor) bool) {
		for v := range decl.Children() {
			if v.Kind() != syntax.VariableDeclarator {
				continue
			}

			name, ok := v.ChildOfKind(syntax.Identifier)
			if !ok {
				continue
			}

			init, ok := initializer(v)
			if !ok {
				continue
			}

			if !yield(name.Text(), init) {
				return
			}
		}
	}
}

// initializer returns the expression after `=` in a declarator or parameter,
// either wrapped in an equals value clause or inline.
func initializer(c syntax.Cursor) (syntax.Cursor, bool) {
	if ev, ok := c.ChildOfKind(syntax.EqualsValue); ok {
		expr := ev.LastChild()

		return expr, expr.Valid() && !expr.Node().Is("=")
	}

	if eq, ok := c.TokenChild("="); ok {
		expr := eq.NextSibling()

		return expr, expr.Valid()
	}

	return syntax.Cursor{}, false
}
