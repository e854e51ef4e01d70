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

package report

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"strconv"

	"github.com/fatih/color"

	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/syntax"
)

type palette struct {
	path, id, related *color.Color
	severity          map[rule.Severity]*color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		id:      color.New(color.Faint),
		related: color.New(color.FgBlue),
		severity: map[rule.Severity]*color.Color{
			rule.Info:    color.New(color.FgCyan, color.Bold),
			rule.Warning: color.New(color.FgYellow, color.Bold),
			rule.Error:   color.New(color.FgRed, color.Bold),
		},
	}

	for _, c := range append([]*color.Color{p.path, p.id, p.related},
		p.severity[rule.Info], p.severity[rule.Warning], p.severity[rule.Error]) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) forSeverity(s rule.Severity) *color.Color {
	if c, ok := p.severity[s]; ok {
		return c
	}

	return p.severity[rule.Error]
}

// Text prints one line per finding in the form
//
//	path:line:col: severity: message (ID)
//
// followed by the secondary locations when requested. Files that could not be
// processed are printed as "path: error: reason".
func Text(w io.Writer, files []File, opts Options) error {
	var (
		buf bytes.Buffer
		p   = newPalette(opts.Color)
	)

	for _, f := range files {
		if f.Err != nil {
			fmt.Fprintf(&buf, "%s: %s: %v\n", p.path.Sprint(f.Path), p.forSeverity(rule.Error).Sprint("error"), f.Err) // ignore error

			continue
		}

		if len(f.Findings) == 0 {
			continue
		}

		lines := newLines(f.Tree)

		for _, fd := range f.Findings {
			fmt.Fprintf(&buf, "%s: %s: %s %s\n", // ignore error
				p.path.Sprintf("%s:%s", f.Path, lines.location(fd.Span.Start)),
				p.forSeverity(fd.Rule.Severity).Sprint(fd.Rule.Severity),
				fd.Message(),
				p.id.Sprintf("(%s)", fd.Rule.ID))

			if !opts.Related {
				continue
			}

			for _, s := range fd.Secondary {
				fmt.Fprintf(&buf, "\t%s\n", p.related.Sprintf("%s:%s: also redundant", f.Path, lines.location(s.Start))) // ignore error
			}
		}
	}

	_, err := buf.WriteTo(w)

	return err
}

// lines maps byte offsets of a tree's text to line and column.
type lines struct{ file *token.File }

func newLines(tree *syntax.Tree) lines {
	return lines{AddFile(token.NewFileSet(), tree)}
}

func (l lines) position(offset int) token.Position {
	return l.file.PositionFor(l.file.Pos(offset), false)
}

func (l lines) location(offset int) string {
	pos := l.position(offset)

	return strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column)
}
