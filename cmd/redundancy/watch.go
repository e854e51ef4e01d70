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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fillmore-labs.com/redundancy/internal/report"
	"fillmore-labs.com/redundancy/internal/run"
)

func newWatchCmd(g *globals) *cobra.Command {
	var (
		format   report.Format
		debounce = run.DefaultDebounce
	)

	cmd := &cobra.Command{
		Use:   "watch [dirs...]",
		Short: "Check C# files whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := g.options(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			w, err := run.NewWatcher(args, o, debounce)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			opts := report.Options{Format: format, Color: colorOutput(out), Related: true}

			return w.Watch(ctx, func(files []report.File) error { return report.Print(out, files, opts) })
		},
	}

	flags := cmd.Flags()
	flags.Var(&format, "format", "output format (text, json)")
	flags.DurationVar(&debounce, "debounce", run.DefaultDebounce, "delay before changed files are checked")

	return cmd
}
