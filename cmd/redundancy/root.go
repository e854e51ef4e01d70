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
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"fillmore-labs.com/redundancy/internal/config"
	"fillmore-labs.com/redundancy/internal/run"
)

// ErrFindings is returned by commands that completed with findings.
var ErrFindings = errors.New("findings reported")

// globals holds the values of the persistent flags.
type globals struct {
	config   string
	jobs     int
	logLevel slog.Level
}

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	g := &globals{logLevel: slog.LevelWarn}

	root := &cobra.Command{
		Use:           "redundancy",
		Short:         "Find and remove redundant C# code",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.config, "config", "c", "", "configuration file (YAML or TOML)")
	flags.IntVarP(&g.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	flags.Var((*levelValue)(&g.logLevel), "log-level", "log level (debug, info, warn, error)")

	root.AddCommand(newCheckCmd(g), newRulesCmd(g), newWatchCmd(g))

	return root
}

// options returns the run options for the configuration file and flags.
func (g *globals) options(cmd *cobra.Command) (*run.Options, error) {
	f := config.Default()

	if g.config != "" {
		var err error
		if f, err = config.Load(g.config); err != nil {
			return nil, err
		}
	}

	o, err := run.FromConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.config, err)
	}

	if cmd.Flags().Changed("jobs") || f.Jobs <= 0 {
		o.Jobs = g.jobs
	}

	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: g.logLevel}))

	return o, nil
}

type levelValue slog.Level

func (l *levelValue) String() string { return (*slog.Level)(l).String() }

func (l *levelValue) Set(s string) error { return (*slog.Level)(l).UnmarshalText([]byte(s)) }

func (l *levelValue) Type() string { return "level" }
