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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/redundancy/internal/report"
	"fillmore-labs.com/redundancy/internal/run"
)

type checkFlags struct {
	format  report.Format
	fix     bool
	diff    bool
	related bool
}

func newCheckCmd(g *globals) *cobra.Command {
	var f checkFlags

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report redundant code in C# files and directories",
		Long: `Check reports redundant code in the given files and directories,
defaulting to the current directory. Directories are searched for files
matching the configured include patterns.

With --fix the fixes of all findings are written back. With --diff they are
printed as a unified diff instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, g, f, args)
		},
	}

	flags := cmd.Flags()
	flags.Var(&f.format, "format", "output format (text, json)")
	flags.BoolVar(&f.fix, "fix", false, "apply fixes to the files")
	flags.BoolVar(&f.diff, "diff", false, "print fixes as a unified diff")
	flags.BoolVar(&f.related, "related", true, "print secondary locations")
	cmd.MarkFlagsMutuallyExclusive("fix", "diff")

	return cmd
}

func runCheck(cmd *cobra.Command, g *globals, f checkFlags, args []string) error {
	o, err := g.options(cmd)
	if err != nil {
		return err
	}

	o.Fix, o.Write = f.diff, f.fix

	if len(args) == 0 {
		args = []string{"."}
	}

	paths, err := run.Discover(args, o.Include, o.Exclude)
	if err != nil {
		return err
	}

	o.Logger.Debug("Checking files", "count", len(paths), "options", o)

	files, err := run.Run(cmd.Context(), paths, o)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if f.diff {
		if err := report.WriteDiffs(out, files); err != nil {
			return err
		}
	} else {
		opts := report.Options{Format: f.format, Color: colorOutput(out), Related: f.related}
		if err := report.Print(out, files, opts); err != nil {
			return err
		}
	}

	return result(files, f.fix)
}

// result reports whether the files still contain findings or errors. Findings
// in files that were fixed are considered resolved.
func result(files []report.File, fixed bool) error {
	var findings, failed int

	for _, f := range files {
		switch {
		case f.Err != nil:
			failed++

		case fixed && f.Changed():

		default:
			findings += len(f.Findings)
		}
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%d file(s) could not be processed", failed)

	case findings > 0:
		return ErrFindings

	default:
		return nil
	}
}

func colorOutput(w io.Writer) bool { return !color.NoColor && w == io.Writer(os.Stdout) }
