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
	"fmt"
	"strings"

	"fillmore-labs.com/redundancy/syntax"
)

type tokenClass uint8

const (
	classEOF tokenClass = iota
	classIdent
	classNumber
	classString
	classChar
	classPunct
)

type lexeme struct {
	class      tokenClass
	start, end int
	text       string
	leading    syntax.Trivia
	trailing   syntax.Trivia
}

// operators are matched longest first.
var operators = [...]string{
	"??=", "=>", "==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "??", "?.", "::",
}

// lex splits src into tokens and distributes the trivia between them. The
// last lexeme is an empty end-of-file token.
func lex(src string) ([]lexeme, error) {
	var tokens []lexeme

	for i := skipTrivia(src, 0); i < len(src); i = skipTrivia(src, i) {
		l, err := next(src, i)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, l)
		i = l.end
	}

	tokens = append(tokens, lexeme{class: classEOF, start: len(src), end: len(src)})

	prev := 0
	for k := range tokens {
		gap := src[prev:tokens[k].start]
		if k == 0 {
			tokens[k].leading = syntax.ScanTrivia(gap)
		} else {
			tokens[k-1].trailing, tokens[k].leading = syntax.SplitTrivia(gap)
		}

		prev = tokens[k].end
	}

	return tokens, nil
}

// skipTrivia returns the offset of the next token at or after i.
func skipTrivia(src string, i int) int {
	lineStart := i == 0 || src[i-1] == '\n'

	for i < len(src) {
		switch c := src[i]; {
		case c == '\n' || c == '\r':
			lineStart = true
			i++

		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			i++

		case strings.HasPrefix(src[i:], "//"), c == '#' && lineStart:
			if n := strings.IndexAny(src[i:], "\r\n"); n >= 0 {
				i += n
			} else {
				i = len(src)
			}

		case strings.HasPrefix(src[i:], "/*"):
			if n := strings.Index(src[i+2:], "*/"); n >= 0 {
				i += n + 4
			} else {
				i = len(src)
			}

		default:
			return i
		}
	}

	return i
}

func next(src string, i int) (lexeme, error) {
	c := src[i]

	switch {
	case c == '@' && i+1 < len(src) && src[i+1] == '"':
		return scanVerbatim(src, i, i+2)

	case c == '$' && i+1 < len(src) && src[i+1] == '"':
		return scanQuoted(src, i, i+2, '"', classString)

	case c == '"':
		return scanQuoted(src, i, i+1, '"', classString)

	case c == '\'':
		return scanQuoted(src, i, i+1, '\'', classChar)

	case isLetter(c) || c == '@':
		j := i + 1
		for j < len(src) && (isLetter(src[j]) || isDigit(src[j])) {
			j++
		}

		return lexeme{class: classIdent, start: i, end: j, text: src[i:j]}, nil

	case isDigit(c) || c == '.' && i+1 < len(src) && isDigit(src[i+1]):
		return scanNumber(src, i), nil
	}

	for _, op := range operators {
		if strings.HasPrefix(src[i:], op) {
			return lexeme{class: classPunct, start: i, end: i + len(op), text: op}, nil
		}
	}

	if strings.ContainsRune("{}()[];,.:=<>+-*/%!~?&|^", rune(c)) {
		return lexeme{class: classPunct, start: i, end: i + 1, text: src[i : i+1]}, nil
	}

	return lexeme{}, fmt.Errorf("offset %d: unexpected character %q", i, c)
}

func scanQuoted(src string, start, i int, quote byte, class tokenClass) (lexeme, error) {
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2

		case quote:
			return lexeme{class: class, start: start, end: i + 1, text: src[start : i+1]}, nil

		case '\n':
			return lexeme{}, fmt.Errorf("offset %d: unterminated literal", start)

		default:
			i++
		}
	}

	return lexeme{}, fmt.Errorf("offset %d: unterminated literal", start)
}

func scanVerbatim(src string, start, i int) (lexeme, error) {
	for i < len(src) {
		if src[i] != '"' {
			i++

			continue
		}

		if i+1 < len(src) && src[i+1] == '"' {
			i += 2

			continue
		}

		return lexeme{class: classString, start: start, end: i + 1, text: src[start : i+1]}, nil
	}

	return lexeme{}, fmt.Errorf("offset %d: unterminated verbatim string", start)
}

func scanNumber(src string, i int) lexeme {
	start := i
	hex := strings.HasPrefix(src[i:], "0x") || strings.HasPrefix(src[i:], "0X")

	for i < len(src) {
		c := src[i]

		switch {
		case isDigit(c) || isLetter(c):
			i++

		case c == '.' && i+1 < len(src) && isDigit(src[i+1]):
			i++

		case (c == '+' || c == '-') && !hex && (src[i-1] == 'e' || src[i-1] == 'E'):
			i++

		default:
			return lexeme{class: classNumber, start: start, end: i, text: src[start:i]}
		}
	}

	return lexeme{class: classNumber, start: start, end: i, text: src[start:i]}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
