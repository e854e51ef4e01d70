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
	"encoding/json"
	"io"

	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/syntax"
)

// LocationJSON is a source range with byte offsets and 1-based line and column.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// EditJSON replaces the text at Location with NewText.
type EditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

// FixJSON is the fix of a single finding, applied alone.
type FixJSON struct {
	Title string     `json:"title"`
	Edits []EditJSON `json:"edits"`
}

// FindingJSON is a finding in JSON output.
type FindingJSON struct {
	Rule     string         `json:"rule"`
	Name     string         `json:"name"`
	Category string         `json:"category,omitempty"`
	Severity rule.Severity  `json:"severity"`
	Message  string         `json:"message"`
	Location LocationJSON   `json:"location"`
	Related  []LocationJSON `json:"related,omitempty"`
	Fix      *FixJSON       `json:"fix,omitempty"`
}

// ErrorJSON is a file that could not be processed.
type ErrorJSON struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Output is the root of the JSON output.
type Output struct {
	Findings []FindingJSON `json:"findings"`
	Errors   []ErrorJSON   `json:"errors,omitempty"`
	Fixed    int           `json:"fixed,omitempty"`
	Count    int           `json:"count"`
}

// BuildOutput collects the JSON output of files without serializing it.
func BuildOutput(files []File) Output {
	out := Output{Findings: []FindingJSON{}}

	for _, f := range files {
		if f.Err != nil {
			out.Errors = append(out.Errors, ErrorJSON{File: f.Path, Message: f.Err.Error()})

			continue
		}

		out.Fixed += f.Applied

		if len(f.Findings) == 0 {
			continue
		}

		lines := newLines(f.Tree)

		for _, fd := range f.Findings {
			fj := FindingJSON{
				Rule:     fd.Rule.ID,
				Name:     fd.Rule.Name,
				Category: fd.Rule.Category,
				Severity: fd.Rule.Severity,
				Message:  fd.Message(),
				Location: lines.locationJSON(f.Path, fd.Span),
			}

			for _, s := range fd.Secondary {
				fj.Related = append(fj.Related, lines.locationJSON(f.Path, s))
			}

			if edits, ok := FixEdits(f.Tree, fd); ok {
				fix := &FixJSON{Title: fd.Fix.Message, Edits: make([]EditJSON, 0, len(edits))}
				for _, e := range edits {
					fix.Edits = append(fix.Edits, EditJSON{
						Location: lines.locationJSON(f.Path, syntax.Span{Start: e.Start, End: e.End}),
						NewText:  e.NewText,
					})
				}

				fj.Fix = fix
			}

			out.Findings = append(out.Findings, fj)
		}
	}

	out.Count = len(out.Findings)

	return out
}

// JSON writes the findings and errors of files as one indented JSON document.
func JSON(w io.Writer, files []File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(BuildOutput(files))
}

func (l lines) locationJSON(path string, s syntax.Span) LocationJSON {
	start, end := l.position(s.Start), l.position(s.End)

	return LocationJSON{
		File:      path,
		StartByte: s.Start,
		EndByte:   s.End,
		StartLine: start.Line,
		StartCol:  start.Column,
		EndLine:   end.Line,
		EndCol:    end.Column,
	}
}
