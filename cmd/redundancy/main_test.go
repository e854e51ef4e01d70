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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `class Test
{
	void Method()
	{
		bool f = false;
		f |= true;
	}
}
`

const fixed = `class Test
{
	void Method()
	{
		bool f = false;
		f = true;
	}
}
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(t.Context())

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRootRegistersCommands(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range NewRootCmd().Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"check", "rules", "watch"})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "src/Test.cs", sample)
	writeFile(t, dir, "obj/Generated.cs", sample)

	stdout, _, err := execute(t, "check", dir)
	require.ErrorIs(t, err, ErrFindings)

	assert.Equal(t, path+":6:3: info: Replace with simple assignment (RD0001)\n", stdout)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Test.cs", fixed)

	stdout, _, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Test.cs", sample)

	stdout, _, err := execute(t, "check", "--format", "json", dir)
	require.ErrorIs(t, err, ErrFindings)

	var out struct {
		Findings []struct {
			Rule string `json:"rule"`
		} `json:"findings"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, "RD0001", out.Findings[0].Rule)
}

func TestCheckInvalidFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "check", "--format", "xml", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestCheckDiff(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "Test.cs", sample)

	stdout, _, err := execute(t, "check", "--diff", path)
	require.ErrorIs(t, err, ErrFindings)

	assert.Contains(t, stdout, "-\t\tf |= true;\n+\t\tf = true;\n")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample, string(content))
}

func TestCheckFix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "Test.cs", sample)

	_, _, err := execute(t, "check", "--fix", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixed, string(content))
}

func TestCheckFixDiffExclusive(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "check", "--fix", "--diff", t.TempDir())
	require.Error(t, err)
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Test.cs", sample)
	cfg := writeFile(t, dir, "redundancy.yaml", "rules:\n  RD0001:\n    enabled: false\n")

	stdout, _, err := execute(t, "check", "--config", cfg, dir)
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestCheckMissingConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"), "check", dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRules(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeFile(t, dir, "redundancy.toml", "[rules.RedundantCatchClause]\nseverity = \"warning\"\n")

	stdout, _, err := execute(t, "rules", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, stdout, "ID")
	assert.Regexp(t, `RD0001\s+ReplaceWithSimpleAssignment\s+info\s+true`, stdout)
	assert.Regexp(t, `RD0002\s+RedundantCatchClause\s+warning\s+true`, stdout)
	assert.Regexp(t, `RD0003\s+RedundantArgumentDefaultValue\s+info\s+true`, stdout)
}

func TestLogLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "Test.cs", fixed)

	_, stderr, err := execute(t, "--log-level", "debug", "check", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")

	_, _, err = execute(t, "--log-level", "loud", "check", dir)
	require.Error(t, err)
}
