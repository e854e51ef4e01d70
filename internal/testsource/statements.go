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

import "fillmore-labs.com/redundancy/syntax"

func (p *parser) block() *syntax.Node {
	children := []*syntax.Node{p.expect("{")}

	for !p.at("}") {
		if p.cur().class == classEOF {
			p.fail("unterminated block")
		}

		children = append(children, p.statement())
	}

	children = append(children, p.expect("}"))

	return syntax.NewNode(syntax.Block, children...)
}

func (p *parser) statement() *syntax.Node {
	switch {
	case p.at("{"):
		return p.block()

	case p.at(";"):
		return syntax.NewNode(syntax.Other, p.expect(";"))

	case p.at("try"):
		return p.tryStatement()

	case p.at("throw"):
		return p.jump(syntax.ThrowStatement)

	case p.at("return"):
		return p.jump(syntax.ReturnStatement)

	case p.at("break"), p.at("continue"):
		return syntax.NewNode(syntax.Other, p.token(syntax.Token), p.expect(";"))

	case p.at("if"):
		children := []*syntax.Node{p.expect("if"), p.expect("("), p.expression(), p.expect(")"), p.statement()}
		if p.at("else") {
			children = append(children, p.expect("else"), p.statement())
		}

		return syntax.NewNode(syntax.Other, children...)

	case p.at("while"):
		return syntax.NewNode(syntax.Other, p.expect("while"), p.expect("("), p.expression(), p.expect(")"), p.statement())

	case p.at("const"):
		return syntax.NewNode(syntax.LocalDeclaration, p.expect("const"), p.variableDeclaration(p.typeName()), p.expect(";"))

	case p.declarationAhead():
		return syntax.NewNode(syntax.LocalDeclaration, p.variableDeclaration(p.typeName()), p.expect(";"))

	default:
		return syntax.NewNode(syntax.ExpressionStatement, p.expression(), p.expect(";"))
	}
}

// jump parses throw and return statements with an optional expression.
func (p *parser) jump(kind syntax.Kind) *syntax.Node {
	children := []*syntax.Node{p.token(syntax.Token)}
	if !p.at(";") {
		children = append(children, p.expression())
	}

	children = append(children, p.expect(";"))

	return syntax.NewNode(kind, children...)
}

func (p *parser) tryStatement() *syntax.Node {
	children := []*syntax.Node{p.expect("try"), p.block()}

	for p.at("catch") {
		clause := []*syntax.Node{p.expect("catch")}

		if p.at("(") {
			decl := []*syntax.Node{p.expect("("), p.typeName()}
			if p.isIdentifier() {
				decl = append(decl, p.identifier())
			}

			decl = append(decl, p.expect(")"))
			clause = append(clause, syntax.NewNode(syntax.CatchDeclaration, decl...))
		}

		if p.at("when") {
			clause = append(clause, syntax.NewNode(syntax.CatchFilter, p.expect("when"), p.expect("("), p.expression(), p.expect(")")))
		}

		clause = append(clause, p.block())
		children = append(children, syntax.NewNode(syntax.CatchClause, clause...))
	}

	if p.at("finally") {
		children = append(children, syntax.NewNode(syntax.FinallyClause, p.expect("finally"), p.block()))
	}

	if len(children) == 2 {
		p.fail("try without catch or finally")
	}

	return syntax.NewNode(syntax.TryStatement, children...)
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "??=": true,
}

// binaryLevels lists binary operators from lowest to highest precedence.
var binaryLevels = [][]string{
	{"??"},
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!="},
	{"<", ">", "<=", ">="},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *parser) expression() *syntax.Node {
	left := p.conditional()

	if l := p.cur(); l.class == classPunct && assignmentOperators[l.text] {
		op := p.token(syntax.Token)
		right := p.expression()

		return syntax.NewNode(syntax.AssignmentKind(op.Text()), left, op, right)
	}

	return left
}

func (p *parser) conditional() *syntax.Node {
	cond := p.binary(0)
	if !p.at("?") {
		return cond
	}

	return syntax.NewNode(syntax.Other, cond, p.expect("?"), p.expression(), p.expect(":"), p.expression())
}

func (p *parser) binary(level int) *syntax.Node {
	if level == len(binaryLevels) {
		return p.unary()
	}

	left := p.binary(level + 1)
	for p.at(binaryLevels[level]...) {
		op := p.token(syntax.Token)
		left = syntax.NewNode(syntax.Other, left, op, p.binary(level+1))
	}

	return left
}

func (p *parser) unary() *syntax.Node {
	if p.at("-", "+", "!", "~", "++", "--") {
		return syntax.NewNode(syntax.PrefixUnary, p.token(syntax.Token), p.unary())
	}

	return p.postfix(p.primary())
}

func (p *parser) primary() *syntax.Node {
	l := p.cur()

	switch {
	case l.class == classNumber, l.class == classString, l.class == classChar,
		p.at("true", "false", "null"):
		return p.token(syntax.Literal)

	case p.at("this", "base"):
		return p.token(syntax.Token)

	case p.at("("):
		return syntax.NewNode(syntax.Parenthesized, p.expect("("), p.expression(), p.expect(")"))

	case p.at("new"):
		return p.objectCreation()

	case p.at("typeof", "default") && p.peek(1).text == "(":
		return syntax.NewNode(syntax.Other, p.token(syntax.Token), p.expect("("), p.typeName(), p.expect(")"))

	case p.at("default"):
		return p.token(syntax.Literal)

	case l.class == classIdent && predefined[l.text]:
		return p.token(syntax.TypeName)

	default:
		return p.identifier()
	}
}

func (p *parser) objectCreation() *syntax.Node {
	newToken := p.expect("new")

	if p.at("[", "{") {
		children := []*syntax.Node{newToken}
		if p.at("[") {
			children = append(children, p.balanced(syntax.Other, "[", "]"))
		}

		return syntax.NewNode(syntax.Other, append(children, p.balanced(syntax.Other, "{", "}"))...)
	}

	children := []*syntax.Node{newToken, p.typeName()}

	if p.at("(") {
		children = append(children, p.argumentList("(", ")"))
	}

	if p.at("{") {
		children = append(children, p.balanced(syntax.Other, "{", "}"))
	}

	return syntax.NewNode(syntax.ObjectCreation, children...)
}

func (p *parser) postfix(expr *syntax.Node) *syntax.Node {
	for {
		switch {
		case p.at("."):
			expr = syntax.NewNode(syntax.MemberAccess, expr, p.expect("."), p.identifier())

		case p.at("?."):
			expr = syntax.NewNode(syntax.Other, expr, p.expect("?."), p.identifier())

		case p.at("("):
			expr = syntax.NewNode(syntax.Invocation, expr, p.argumentList("(", ")"))

		case p.at("["):
			expr = syntax.NewNode(syntax.ElementAccess, expr, p.argumentList("[", "]"))

		case p.at("++", "--"):
			expr = syntax.NewNode(syntax.Other, expr, p.token(syntax.Token))

		default:
			return expr
		}
	}
}

func (p *parser) argumentList(opening, closing string) *syntax.Node {
	children := []*syntax.Node{p.expect(opening)}

	for i := 0; !p.at(closing); i++ {
		if i > 0 {
			children = append(children, p.expect(","))
		}

		children = append(children, p.argument())
	}

	children = append(children, p.expect(closing))

	return syntax.NewNode(syntax.ArgumentList, children...)
}

func (p *parser) argument() *syntax.Node {
	var children []*syntax.Node

	if p.isIdentifier() && p.peek(1).text == ":" {
		children = append(children, syntax.NewNode(syntax.NameColon, p.identifier(), p.expect(":")))
	}

	if p.at("ref", "out", "in") {
		children = append(children, p.token(syntax.Token))
	}

	children = append(children, p.expression())

	return syntax.NewNode(syntax.Argument, children...)
}
