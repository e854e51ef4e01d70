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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundancy/internal/config"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(SimpleAssignmentRule, CatchClauseRule)
	assert.True(t, b.Enabled(SimpleAssignmentRule))
	assert.True(t, b.Enabled(CatchClauseRule))
	assert.False(t, b.Enabled(DefaultArgumentRule))

	b.Set(CatchClauseRule, false)
	b.Set(DefaultArgumentRule, true)
	assert.False(t, b.Enabled(CatchClauseRule))
	assert.True(t, b.Enabled(DefaultArgumentRule))

	c := b.With(SimpleAssignmentRule, false)
	assert.False(t, c.Enabled(SimpleAssignmentRule))
	assert.True(t, b.Enabled(SimpleAssignmentRule))

	d := DefaultBehavior()
	assert.True(t, d.Enabled(Suppressions))
	assert.False(t, d.Enabled(IncludeGenerated))
}

const yamlConfig = `
include: ["src/**/*.cs"]
jobs: 4
max-passes: 3
generated: true
suppressions: false
rules:
  RD0001:
    enabled: false
  RedundantCatchClause:
    severity: warning
`

const tomlConfig = `
include = ["src/**/*.cs"]
jobs = 4
max-passes = 3
generated = true
suppressions = false

[rules.RD0001]
enabled = false

[rules.RedundantCatchClause]
severity = "warning"
`

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, ext, data string
	}{
		{"yaml", ".yaml", yamlConfig},
		{"yml", ".YML", yamlConfig},
		{"toml", ".toml", tomlConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse(tt.ext, []byte(tt.data))
			require.NoError(t, err)

			assert.Equal(t, []string{"src/**/*.cs"}, f.Include)
			assert.Equal(t, Default().Exclude, f.Exclude)
			assert.Equal(t, 4, f.Jobs)
			assert.Equal(t, 3, f.MaxPasses)

			b := f.Behavior()
			assert.True(t, b.Enabled(IncludeGenerated))
			assert.False(t, b.Enabled(Suppressions))

			reg, err := f.Configure(rules.Default())
			require.NoError(t, err)

			assign, ok := reg.Lookup(rules.SimpleAssignmentID)
			require.True(t, ok)
			assert.False(t, assign.Enabled)

			catch, ok := reg.Lookup(rules.CatchClauseID)
			require.True(t, ok)
			assert.True(t, catch.Enabled)
			assert.Equal(t, rule.Warning, catch.Severity)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, ext, data string
		err             error
	}{
		{"format", ".json", "{}", ErrUnknownFormat},
		{"jobs", ".yaml", "jobs: -1", ErrInvalidValue},
		{"include", ".toml", "include = []", ErrInvalidValue},
		{"severity", ".yaml", "rules:\n  RD0001:\n    severity: fatal", rule.ErrInvalidSeverity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.ext, []byte(tt.data))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestConfigureUnknownRule(t *testing.T) {
	t.Parallel()

	f, err := Parse(".yaml", []byte("rules:\n  RD9999:\n    enabled: false\n"))
	require.NoError(t, err)

	_, err = f.Configure(rules.Default())
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "redundancy.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Jobs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelectRules(t *testing.T) {
	t.Parallel()

	reg, err := SelectRules(rules.Default(), NewBitMask(CatchClauseRule))
	require.NoError(t, err)

	var enabled []string
	for _, r := range reg.Rules() {
		if r.Enabled {
			enabled = append(enabled, r.ID)
		}
	}

	assert.Equal(t, []string{rules.CatchClauseID}, enabled)
}
