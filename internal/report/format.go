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
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format selects the output of [Print].
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
)

// ErrInvalidFormat is returned when an output format name is not recognized.
var ErrInvalidFormat = errors.New("invalid output format")

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"

	case FormatJSON:
		return "json"

	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// Set implements [flag.Value].
func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*f = FormatText

	case "json":
		*f = FormatJSON

	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return nil
}

// Type is used by command line flag libraries to describe the value.
func (f *Format) Type() string { return "format" }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error { return f.Set(string(text)) }

// Options configures [Print].
type Options struct {
	Format Format

	// Color enables colored text output.
	Color bool

	// Related prints the secondary locations of findings.
	Related bool
}

// Print writes the findings and errors of files to w.
func Print(w io.Writer, files []File, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return JSON(w, files)

	default:
		return Text(w, files, opts)
	}
}
