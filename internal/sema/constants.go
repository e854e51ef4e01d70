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
	"go/constant"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// maxConstantDepth bounds the resolution of constants defined by other constants.
const maxConstantDepth = 32

// Constant implements [semantic.Facts].
func (m *Model) Constant(expr syntax.Cursor) (semantic.Value, bool) {
	return m.constant(expr, 0)
}

func (m *Model) constant(expr syntax.Cursor, depth int) (semantic.Value, bool) {
	if depth > maxConstantDepth || !expr.Valid() {
		return semantic.Value{}, false
	}

	switch expr.Kind() {
	case syntax.Literal:
		return ParseLiteral(expr.Text())

	case syntax.Parenthesized:
		for d := range expr.Children() {
			if !d.Node().IsToken() || d.Kind() != syntax.Token {
				return m.constant(d, depth+1)
			}
		}

	case syntax.PrefixUnary:
		return m.unary(expr, depth)

	case syntax.Identifier:
		if init, ok := m.lookupConst(expr); ok {
			return m.declared(init, depth)
		}

	case syntax.MemberAccess:
		if init, ok := m.memberConst(expr); ok {
			return m.declared(init, depth)
		}
	}

	return semantic.Value{}, false
}

// declared evaluates the initializer of a constant and converts it to the
// declared type.
func (m *Model) declared(init syntax.Cursor, depth int) (semantic.Value, bool) {
	v, ok := m.constant(init, depth+1)
	if !ok {
		return semantic.Value{}, false
	}

	for p := init.Parent(); p.Valid(); p = p.Parent() {
		if p.Kind() == syntax.VariableDeclaration {
			return v.Convert(semantic.BasicType(p.FirstChild().Text()))
		}
	}

	return semantic.Value{}, false
}

func (m *Model) unary(expr syntax.Cursor, depth int) (semantic.Value, bool) {
	if expr.NumChildren() != 2 {
		return semantic.Value{}, false
	}

	operand, ok := m.constant(expr.Child(1), depth+1)
	if !ok || operand.IsNull() {
		return semantic.Value{}, false
	}

	c, typ := operand.Constant(), operand.Type()

	switch op := expr.Child(0).Text(); op {
	case "!":
		if typ != semantic.BoolType {
			return semantic.Value{}, false
		}

		return semantic.Bool(!constant.BoolVal(c)), true

	case "-", "+":
		switch {
		case typ == semantic.ULongType && op == "-":
			if !minLiteral(expr.Child(1), c, 63) {
				return semantic.Value{}, false
			}

			typ = semantic.LongType

		case typ == semantic.UIntType && op == "-":
			typ = semantic.LongType
			if minLiteral(expr.Child(1), c, 31) {
				typ = semantic.IntType
			}

		case typ.Integral() && typ != semantic.UIntType && typ != semantic.ULongType:
			typ = max(typ, semantic.IntType)

		case typ.Real(), typ == semantic.DecimalType:
			// Negative zero is a distinct value.
			if op == "-" && constant.Sign(c) == 0 {
				return semantic.Value{}, false
			}

		case typ != semantic.UIntType && typ != semantic.ULongType:
			return semantic.Value{}, false
		}

		if op == "-" {
			c = constant.UnaryOp(token.SUB, c, 0)
		}

		if typ.Integral() && !typ.Fits(c) {
			return semantic.Value{}, false
		}

		if typ == semantic.DecimalType {
			return semantic.MakeDecimal(c, operand.Scale()), true
		}

		return semantic.MakeValue(typ, c), true

	default:
		return semantic.Value{}, false
	}
}

// minLiteral reports whether operand is the literal 2^bits, which negated is
// the minimum of the signed type.
func minLiteral(operand syntax.Cursor, c constant.Value, bits uint) bool {
	return operand.Kind() == syntax.Literal &&
		constant.Compare(c, token.EQL, constant.Shift(constant.MakeInt64(1), token.SHL, bits))
}

// lookupConst finds the initializer of a constant local declared before id
// in an enclosing block, or of a constant field of an enclosing class.
func (m *Model) lookupConst(id syntax.Cursor) (syntax.Cursor, bool) {
	name := id.Text()

	for scope := range id.Enclosing(syntax.Block, syntax.ClassDecl) {
		if scope.Kind() == syntax.ClassDecl {
			if init, ok := m.fieldConst(scope, name); ok {
				return init, true
			}

			continue
		}

		for stmt := range scope.Children() {
			if stmt.Span().Start >= id.Span().Start {
				break
			}

			if stmt.Kind() != syntax.LocalDeclaration {
				continue
			}

			if _, ok := stmt.TokenChild("const"); !ok {
				continue
			}

			decl, ok := stmt.ChildOfKind(syntax.VariableDeclaration)
			if !ok {
				continue
			}

			for n, init := range declarators(decl) {
				if n == name {
					return init, true
				}
			}
		}
	}

	return syntax.Cursor{}, false
}

// fieldConst finds a constant field of a class or its base classes.
func (m *Model) fieldConst(decl syntax.Cursor, name string) (syntax.Cursor, bool) {
	id, ok := decl.ChildOfKind(syntax.Identifier)
	if !ok {
		return syntax.Cursor{}, false
	}

	return m.classConst(id.Text(), name)
}

func (m *Model) classConst(className, name string) (syntax.Cursor, bool) {
	for range maxConstantDepth {
		cl, ok := m.classes[className]
		if !ok {
			return syntax.Cursor{}, false
		}

		if init, ok := cl.consts[name]; ok {
			return init, true
		}

		if className, ok = m.base(className); !ok || className == object {
			return syntax.Cursor{}, false
		}
	}

	return syntax.Cursor{}, false
}

// memberConst resolves `Type.Name` to a constant field.
func (m *Model) memberConst(expr syntax.Cursor) (syntax.Cursor, bool) {
	if expr.NumChildren() != 3 {
		return syntax.Cursor{}, false
	}

	receiver, member := expr.Child(0), expr.Child(2)
	if !receiver.Is(syntax.Identifier, syntax.TypeName) || member.Kind() != syntax.Identifier {
		return syntax.Cursor{}, false
	}

	className, ok := m.resolve(receiver.Text())
	if !ok {
		return syntax.Cursor{}, false
	}

	return m.classConst(className, member.Text())
}

// ParseLiteral returns the typed value of a C# literal token. Literals whose
// value can not be determined exactly, like interpolated or raw strings, are
// not constant.
func ParseLiteral(text string) (semantic.Value, bool) {
	switch {
	case text == "true":
		return semantic.Bool(true), true

	case text == "false":
		return semantic.Bool(false), true

	case text == "null":
		return semantic.Null, true

	case strings.HasPrefix(text, `@"`) && strings.HasSuffix(text, `"`) && len(text) >= 3:
		body := text[2 : len(text)-1]
		if strings.Contains(strings.ReplaceAll(body, `""`, ""), `"`) {
			return semantic.Value{}, false
		}

		return utf16String(strings.ReplaceAll(body, `""`, `"`))

	case strings.HasPrefix(text, `"`) && !strings.HasPrefix(text, `"""`) &&
		strings.HasSuffix(text, `"`) && len(text) >= 2:
		s, ok := unescape(text[1:len(text)-1], '"')
		if !ok {
			return semantic.Value{}, false
		}

		return utf16String(s)

	case strings.HasPrefix(text, "'") && strings.HasSuffix(text, "'") && len(text) >= 3:
		s, ok := unescape(text[1:len(text)-1], '\'')
		if !ok {
			return semantic.Value{}, false
		}

		r := []rune(s)
		if len(r) != 1 || r[0] > 0xFFFF {
			return semantic.Value{}, false
		}

		return semantic.MakeValue(semantic.CharType, constant.MakeInt64(int64(r[0]))), true

	case text != "" && ('0' <= text[0] && text[0] <= '9' || text[0] == '.'):
		return parseNumber(text)

	default:
		return semantic.Value{}, false
	}
}

// utf16String rejects strings that are not valid UTF-8, which includes lone
// surrogates.
func utf16String(s string) (semantic.Value, bool) {
	if !utf8.ValidString(s) {
		return semantic.Value{}, false
	}

	return semantic.String(s), true
}

// unescape decodes the escape sequences of a regular C# string or character
// literal body. An unescaped quote ends the literal early and is rejected.
func unescape(body string, quote byte) (string, bool) {
	var b strings.Builder

	for i := 0; i < len(body); {
		c := body[i]

		if c == quote {
			return "", false
		}

		if c != '\\' {
			b.WriteByte(c)
			i++

			continue
		}

		if i+1 >= len(body) {
			return "", false
		}

		e := body[i+1]
		i += 2

		var r rune

		switch e {
		case '\'', '"', '\\':
			r = rune(e)
		case '0':
			r = 0
		case 'a':
			r = '\a'
		case 'b':
			r = '\b'
		case 'e':
			r = 0x1B
		case 'f':
			r = '\f'
		case 'n':
			r = '\n'
		case 'r':
			r = '\r'
		case 't':
			r = '\t'
		case 'v':
			r = '\v'

		case 'x', 'u', 'U':
			minDigits, maxDigits := 1, 4
			switch e {
			case 'u':
				minDigits = 4
			case 'U':
				minDigits, maxDigits = 8, 8
			}

			n := 0
			for n < maxDigits && i+n < len(body) && isHex(body[i+n]) {
				n++
			}

			if n < minDigits {
				return "", false
			}

			v, err := strconv.ParseUint(body[i:i+n], 16, 32)
			if err != nil || v > unicode.MaxRune {
				return "", false
			}

			r = rune(v)
			i += n

		default:
			return "", false
		}

		if 0xD800 <= r && r <= 0xDFFF {
			return "", false
		}

		b.WriteRune(r)
	}

	return b.String(), true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// parseNumber types a numeric literal the way C# does: integers get the
// first of int, uint, long and ulong allowed by the suffix that holds the
// value, reals are double unless suffixed with f or m.
func parseNumber(text string) (semantic.Value, bool) {
	text = strings.ReplaceAll(strings.ToLower(text), "_", "")

	radix := strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0b")
	candidates := []semantic.Basic{semantic.IntType, semantic.UIntType, semantic.LongType, semantic.ULongType}
	realType := semantic.DoubleType

	switch {
	case strings.HasSuffix(text, "ul"), strings.HasSuffix(text, "lu"):
		text = text[:len(text)-2]
		candidates = candidates[3:]

	case strings.HasSuffix(text, "u"):
		text = text[:len(text)-1]
		candidates = []semantic.Basic{semantic.UIntType, semantic.ULongType}

	case strings.HasSuffix(text, "l"):
		text = text[:len(text)-1]
		candidates = candidates[2:]

	case !radix && strings.HasSuffix(text, "f"):
		text, candidates, realType = text[:len(text)-1], nil, semantic.FloatType

	case !radix && strings.HasSuffix(text, "d"):
		text, candidates = text[:len(text)-1], nil

	case !radix && strings.HasSuffix(text, "m"):
		text, candidates, realType = text[:len(text)-1], nil, semantic.DecimalType
	}

	if !radix && strings.ContainsAny(text, ".e") {
		if len(candidates) == 4 {
			candidates = nil
		} else if candidates != nil {
			return semantic.Value{}, false
		}
	}

	if candidates == nil {
		c := constant.MakeFromLiteral(text, token.FLOAT, 0)
		if c.Kind() == constant.Unknown {
			return semantic.Value{}, false
		}

		if realType == semantic.DecimalType {
			return semantic.MakeDecimal(c, decimalScale(text)), true
		}

		v := semantic.MakeValue(realType, c)

		return v, v.Known()
	}

	c := constant.MakeFromLiteral(text, token.INT, 0)
	if c.Kind() != constant.Int {
		return semantic.Value{}, false
	}

	for _, t := range candidates {
		if t.Fits(c) {
			return semantic.MakeValue(t, c), true
		}
	}

	return semantic.Value{}, false
}

// decimalScale returns the number of fractional digits of a decimal literal.
func decimalScale(text string) int {
	mantissa, exp, _ := strings.Cut(text, "e")

	scale := 0
	if _, frac, ok := strings.Cut(mantissa, "."); ok {
		scale = len(frac)
	}

	if exp != "" {
		e, err := strconv.Atoi(exp)
		if err != nil {
			return -1
		}

		scale -= e
	}

	return max(scale, 0)
}
