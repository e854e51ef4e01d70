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

package syntax

import (
	"slices"
	"strings"
)

// TriviaKind classifies a [Piece] of trivia.
type TriviaKind uint8

const (
	Whitespace TriviaKind = iota
	EndOfLine
	Comment
	Directive
	Skipped
)

func (k TriviaKind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"

	case EndOfLine:
		return "end of line"

	case Comment:
		return "comment"

	case Directive:
		return "directive"

	case Skipped:
		return "skipped"

	default:
		return "unknown"
	}
}

// Piece is a single run of trivia.
type Piece struct {
	Kind TriviaKind
	Text string
}

// Trivia is text attached to a token that carries no syntactic meaning,
// preserved verbatim.
type Trivia []Piece

// String returns the concatenated text of all pieces.
func (t Trivia) String() string {
	switch len(t) {
	case 0:
		return ""

	case 1:
		return t[0].Text
	}

	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Text) // ignore error
	}

	return b.String()
}

// Len returns the length of the trivia text in bytes.
func (t Trivia) Len() int {
	n := 0
	for _, p := range t {
		n += len(p.Text)
	}

	return n
}

// HasComment reports whether t contains a comment or a directive.
func (t Trivia) HasComment() bool {
	for _, p := range t {
		if p.Kind == Comment || p.Kind == Directive {
			return true
		}
	}

	return false
}

// Comments yields the comment and directive texts in t.
func (t Trivia) Comments() []string {
	var texts []string
	for _, p := range t {
		if p.Kind == Comment || p.Kind == Directive {
			texts = append(texts, p.Text)
		}
	}

	return texts
}

// TrimLeadingSpace removes the initial run of whitespace and line breaks.
func (t Trivia) TrimLeadingSpace() Trivia {
	for i, p := range t {
		if p.Kind != Whitespace && p.Kind != EndOfLine {
			return t[i:]
		}
	}

	return nil
}

// TrimTrailingSpace removes the final run of whitespace, keeping line breaks.
func (t Trivia) TrimTrailingSpace() Trivia {
	for i, p := range slices.Backward(t) {
		if p.Kind != Whitespace {
			return t[: i+1 : i+1]
		}
	}

	return nil
}

// Indentation returns the final whitespace piece of t, which for the leading
// trivia of a token starting a line is its indentation.
func (t Trivia) Indentation() Trivia {
	if len(t) == 0 || t[len(t)-1].Kind != Whitespace {
		return nil
	}

	return t[len(t)-1:]
}

// ScanTrivia splits text between two tokens into pieces. Text that is neither
// whitespace, a line break, a comment nor a directive is returned as [Skipped].
func ScanTrivia(text string) Trivia {
	return scanTrivia(text, true)
}

func scanTrivia(text string, lineStart bool) Trivia {
	var t Trivia

	for i := 0; i < len(text); {
		var (
			kind TriviaKind
			n    int
		)

		switch c := text[i]; {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			kind, n = Whitespace, spanOf(text[i:], func(c byte) bool { return c == ' ' || c == '\t' || c == '\f' || c == '\v' })

		case c == '\r' && i+1 < len(text) && text[i+1] == '\n':
			kind, n = EndOfLine, 2

		case c == '\n' || c == '\r':
			kind, n = EndOfLine, 1

		case strings.HasPrefix(text[i:], "//"):
			kind, n = Comment, lineLength(text[i:])

		case strings.HasPrefix(text[i:], "/*"):
			kind = Comment
			if end := strings.Index(text[i+2:], "*/"); end >= 0 {
				n = end + 4
			} else {
				n = len(text) - i
			}

		case c == '#' && lineStart:
			kind, n = Directive, lineLength(text[i:])

		default:
			kind, n = Skipped, 1
		}

		if k := len(t) - 1; kind == Skipped && k >= 0 && t[k].Kind == Skipped {
			t[k].Text = text[i-len(t[k].Text) : i+n]
		} else {
			t = append(t, Piece{Kind: kind, Text: text[i : i+n]})
		}

		switch kind {
		case EndOfLine:
			lineStart = true

		case Whitespace:

		default:
			lineStart = false
		}

		i += n
	}

	return t
}

// SplitTrivia divides the text between two tokens into the trailing trivia of
// the first and the leading trivia of the second. Trailing trivia extends up to
// and including the first line break.
func SplitTrivia(gap string) (trailing, leading Trivia) {
	t := scanTrivia(gap, false)
	for i, p := range t {
		if p.Kind == EndOfLine {
			return t[:i+1:i+1], t[i+1:]
		}
	}

	return t, nil
}

func spanOf(s string, f func(byte) bool) int {
	n := 0
	for n < len(s) && f(s[n]) {
		n++
	}

	return n
}

func lineLength(s string) int {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return i
	}

	return len(s)
}
