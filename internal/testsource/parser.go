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

package testsource

import (
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/redundancy/syntax"
)

// ErrSyntax is returned for source the fixture parser does not understand.
var ErrSyntax = errors.New("syntax error")

var keywords = map[string]bool{
	"abstract": true, "base": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "else": true, "extern": true,
	"false": true, "finally": true, "for": true, "foreach": true, "if": true, "in": true,
	"interface": true, "internal": true, "namespace": true, "new": true, "null": true,
	"out": true, "override": true, "params": true, "private": true, "protected": true,
	"public": true, "readonly": true, "ref": true, "return": true, "sealed": true,
	"static": true, "struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "using": true, "virtual": true, "volatile": true, "while": true,
}

var predefined = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "char": true, "decimal": true, "double": true,
	"float": true, "int": true, "uint": true, "long": true, "ulong": true, "short": true,
	"ushort": true, "object": true, "string": true, "void": true, "var": true, "dynamic": true,
}

var modifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true, "static": true,
	"readonly": true, "const": true, "virtual": true, "override": true, "abstract": true,
	"sealed": true, "partial": true, "async": true, "extern": true, "volatile": true,
	"new": true, "unsafe": true, "required": true,
}

// bailout aborts parsing.
type bailout struct{ err error }

type parser struct {
	src     string
	tokens  []lexeme
	pos     int
	classes []string
}

// ParseSource parses a C# compilation unit into a syntax tree shaped like the
// trees of the tree-sitter front end.
func ParseSource(name, src string) (tree *syntax.Tree, err error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrSyntax, err)
	}

	p := &parser{src: src, tokens: tokens}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}

			tree, err = nil, fmt.Errorf("%s: %w", name, b.err)
		}
	}()

	return syntax.NewTree(name, p.compilationUnit()), nil
}

func (p *parser) cur() lexeme { return p.tokens[p.pos] }

func (p *parser) peek(k int) lexeme {
	if i := p.pos + k; i < len(p.tokens) {
		return p.tokens[i]
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *parser) at(texts ...string) bool {
	l := p.cur()
	if l.class != classIdent && l.class != classPunct {
		return false
	}

	return slices.Contains(texts, l.text)
}

func (p *parser) fail(format string, args ...any) {
	l := p.cur()
	panic(bailout{fmt.Errorf("%w at offset %d near %q: %s", ErrSyntax, l.start, l.text, fmt.Sprintf(format, args...))})
}

// token consumes the current token.
func (p *parser) token(kind syntax.Kind) *syntax.Node {
	l := p.cur()
	if l.class == classEOF {
		p.fail("unexpected end of file")
	}

	p.pos++

	return syntax.NewToken(kind, l.leading, l.text, l.trailing)
}

func (p *parser) expect(text string) *syntax.Node {
	if !p.at(text) {
		p.fail("expected %q", text)
	}

	return p.token(syntax.Token)
}

func (p *parser) optional(text string) *syntax.Node {
	if !p.at(text) {
		return nil
	}

	return p.token(syntax.Token)
}

func (p *parser) isIdentifier() bool {
	l := p.cur()

	return l.class == classIdent && !keywords[l.text] && !predefined[l.text]
}

func (p *parser) identifier() *syntax.Node {
	if !p.isIdentifier() {
		p.fail("expected identifier")
	}

	return p.token(syntax.Identifier)
}

// span collapses the tokens from start up to the current position into one
// token of the given kind, keeping their source text verbatim.
func (p *parser) span(kind syntax.Kind, start int) *syntax.Node {
	first, last := p.tokens[start], p.tokens[p.pos-1]

	return syntax.NewToken(kind, first.leading, p.src[first.start:last.end], last.trailing)
}

// skipType advances over a type and reports whether there was one.
func (p *parser) skipType() bool {
	l := p.cur()
	if l.class != classIdent || keywords[l.text] {
		return false
	}

	p.pos++

	for p.at(".", "::") && p.peek(1).class == classIdent {
		p.pos += 2
	}

	if p.at("<") {
		save := p.pos
		p.pos++

		for p.skipType() {
			if !p.at(",") {
				break
			}

			p.pos++
		}

		if !p.at(">") {
			p.pos = save

			return true
		}

		p.pos++
	}

	for p.at("[") && (p.peek(1).text == "]" || p.peek(1).text == ",") {
		p.pos++
		for p.at(",") {
			p.pos++
		}

		if !p.at("]") {
			return false
		}

		p.pos++
	}

	if p.at("?") {
		p.pos++
	}

	return true
}

func (p *parser) typeName() *syntax.Node {
	start := p.pos
	if !p.skipType() {
		p.fail("expected type")
	}

	return p.span(syntax.TypeName, start)
}

// declarationAhead reports whether a type followed by an identifier starts at
// the current position.
func (p *parser) declarationAhead() bool {
	save := p.pos
	defer func() { p.pos = save }()

	return p.skipType() && p.isIdentifier()
}

// balanced collapses a bracketed token sequence into a node of raw tokens.
func (p *parser) balanced(kind syntax.Kind, opening, closing string) *syntax.Node {
	children := []*syntax.Node{p.expect(opening)}

	for depth := 1; depth > 0; {
		switch {
		case p.cur().class == classEOF:
			p.fail("unbalanced %q", opening)

		case p.at(opening):
			depth++

		case p.at(closing):
			depth--
		}

		children = append(children, p.token(syntax.Token))
	}

	return syntax.NewNode(kind, children...)
}

func (p *parser) compilationUnit() *syntax.Node {
	var children []*syntax.Node

	for p.cur().class != classEOF {
		children = append(children, p.topLevel())
	}

	l := p.cur()
	children = append(children, syntax.NewToken(syntax.Token, l.leading, "", l.trailing))

	return syntax.NewNode(syntax.CompilationUnit, children...)
}

func (p *parser) topLevel() *syntax.Node {
	switch {
	case p.at("using"):
		return p.usingDirective()

	case p.at("namespace"):
		return p.namespace()

	default:
		return p.member()
	}
}

func (p *parser) usingDirective() *syntax.Node {
	children := []*syntax.Node{p.expect("using"), p.optional("static")}

	if p.isIdentifier() && p.peek(1).text == "=" {
		children = append(children, p.identifier(), p.expect("="))
	}

	children = append(children, p.typeName(), p.expect(";"))

	return syntax.NewNode(syntax.UsingDirective, children...)
}

func (p *parser) namespace() *syntax.Node {
	children := []*syntax.Node{p.expect("namespace"), p.typeName()}

	if semi := p.optional(";"); semi != nil {
		return syntax.NewNode(syntax.NamespaceDecl, append(children, semi)...)
	}

	return syntax.NewNode(syntax.NamespaceDecl, append(children, p.declarationList())...)
}

func (p *parser) declarationList() *syntax.Node {
	children := []*syntax.Node{p.expect("{")}

	for !p.at("}") {
		if p.cur().class == classEOF {
			p.fail("unterminated declaration list")
		}

		if p.at("using") {
			children = append(children, p.usingDirective())

			continue
		}

		children = append(children, p.member())
	}

	children = append(children, p.expect("}"))

	return syntax.NewNode(syntax.DeclarationList, children...)
}

// member parses a type or member declaration with its attributes and modifiers.
func (p *parser) member() *syntax.Node {
	var prefix []*syntax.Node

	for p.at("[") {
		prefix = append(prefix, p.balanced(syntax.AttributeList, "[", "]"))
	}

	for p.cur().class == classIdent && modifiers[p.cur().text] {
		prefix = append(prefix, p.token(syntax.Token))
	}

	switch {
	case p.at("class", "struct", "interface", "record"):
		return p.classDecl(prefix)

	case p.isIdentifier() && len(p.classes) > 0 && p.cur().text == p.classes[len(p.classes)-1] && p.peek(1).text == "(":
		return p.constructor(prefix)
	}

	typ := p.typeName()

	switch {
	case p.at("this"):
		return p.indexer(prefix, typ)

	case p.isIdentifier() && p.peek(1).text == "(":
		return p.method(prefix, typ)

	case p.isIdentifier() && (p.peek(1).text == "{" || p.peek(1).text == "=>"):
		return p.property(prefix, typ)
	}

	decl := p.variableDeclaration(typ)

	return syntax.NewNode(syntax.FieldDecl, append(prefix, decl, p.expect(";"))...)
}

func (p *parser) classDecl(prefix []*syntax.Node) *syntax.Node {
	children := append(prefix, p.token(syntax.Token))

	name := p.identifier()
	children = append(children, name)

	if p.at("<") {
		children = append(children, p.balanced(syntax.Other, "<", ">"))
	}

	if p.at(":") {
		bases := []*syntax.Node{p.expect(":"), p.typeName()}
		for p.at(",") {
			bases = append(bases, p.expect(","), p.typeName())
		}

		children = append(children, syntax.NewNode(syntax.BaseList, bases...))
	}

	p.classes = append(p.classes, name.Text())
	children = append(children, p.declarationList())
	p.classes = p.classes[:len(p.classes)-1]

	children = append(children, p.optional(";"))

	return syntax.NewNode(syntax.ClassDecl, children...)
}

func (p *parser) constructor(prefix []*syntax.Node) *syntax.Node {
	children := append(prefix, p.identifier(), p.parameterList("(", ")"))

	if p.at(":") {
		init := []*syntax.Node{p.expect(":"), p.token(syntax.Token), p.argumentList("(", ")")}
		children = append(children, syntax.NewNode(syntax.Other, init...))
	}

	children = append(children, p.body())

	return syntax.NewNode(syntax.ConstructorDecl, children...)
}

func (p *parser) method(prefix []*syntax.Node, typ *syntax.Node) *syntax.Node {
	children := append(prefix, typ, p.identifier(), p.parameterList("(", ")"), p.body())

	return syntax.NewNode(syntax.MethodDecl, children...)
}

func (p *parser) indexer(prefix []*syntax.Node, typ *syntax.Node) *syntax.Node {
	children := append(prefix, typ, p.expect("this"), p.parameterList("[", "]"), p.accessors())

	return syntax.NewNode(syntax.IndexerDecl, children...)
}

func (p *parser) property(prefix []*syntax.Node, typ *syntax.Node) *syntax.Node {
	children := append(prefix, typ, p.identifier(), p.accessors())

	if p.at("=") {
		children = append(children, syntax.NewNode(syntax.EqualsValue, p.expect("="), p.expression()), p.expect(";"))
	}

	return syntax.NewNode(syntax.Other, children...)
}

// body parses a block, an expression body or a bare semicolon.
func (p *parser) body() *syntax.Node {
	switch {
	case p.at("{"):
		return p.block()

	case p.at("=>"):
		return syntax.NewNode(syntax.Other, p.expect("=>"), p.expression(), p.expect(";"))

	default:
		return p.expect(";")
	}
}

func (p *parser) accessors() *syntax.Node {
	if p.at("=>") {
		return p.body()
	}

	children := []*syntax.Node{p.expect("{")}

	for !p.at("}") {
		var accessor []*syntax.Node
		for p.at("[") {
			accessor = append(accessor, p.balanced(syntax.AttributeList, "[", "]"))
		}

		for p.cur().class == classIdent && modifiers[p.cur().text] {
			accessor = append(accessor, p.token(syntax.Token))
		}

		if !p.at("get", "set", "init", "add", "remove") {
			p.fail("expected accessor")
		}

		accessor = append(accessor, p.token(syntax.Token), p.body())
		children = append(children, syntax.NewNode(syntax.Other, accessor...))
	}

	children = append(children, p.expect("}"))

	return syntax.NewNode(syntax.Other, children...)
}

func (p *parser) parameterList(opening, closing string) *syntax.Node {
	children := []*syntax.Node{p.expect(opening)}

	for i := 0; !p.at(closing); i++ {
		if i > 0 {
			children = append(children, p.expect(","))
		}

		children = append(children, p.parameter())
	}

	children = append(children, p.expect(closing))

	return syntax.NewNode(syntax.ParameterList, children...)
}

func (p *parser) parameter() *syntax.Node {
	var children []*syntax.Node

	for p.at("[") {
		children = append(children, p.balanced(syntax.AttributeList, "[", "]"))
	}

	for p.at("params", "ref", "out", "in", "this") {
		children = append(children, p.token(syntax.Token))
	}

	children = append(children, p.typeName(), p.identifier())

	if p.at("=") {
		children = append(children, syntax.NewNode(syntax.EqualsValue, p.expect("="), p.expression()))
	}

	return syntax.NewNode(syntax.Parameter, children...)
}

func (p *parser) variableDeclaration(typ *syntax.Node) *syntax.Node {
	children := []*syntax.Node{typ, p.declarator()}

	for p.at(",") {
		children = append(children, p.expect(","), p.declarator())
	}

	return syntax.NewNode(syntax.VariableDeclaration, children...)
}

func (p *parser) declarator() *syntax.Node {
	children := []*syntax.Node{p.identifier()}

	if p.at("=") {
		children = append(children, syntax.NewNode(syntax.EqualsValue, p.expect("="), p.expression()))
	}

	return syntax.NewNode(syntax.VariableDeclarator, children...)
}
