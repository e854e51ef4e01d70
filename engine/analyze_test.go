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

package engine_test

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

const source = `class Test
{
    void Bar(int a = 22, int b = 3) { }

    void Method()
    {
        bool f = false;
        f |= true;
        try
        {
            Bar(22, 3);
        }
        catch
        {
            throw;
        }
    }
}
`

type result struct {
	ID, Text, Message string
}

func analyze(t *testing.T, tree *syntax.Tree, opts ...Option) []result {
	t.Helper()

	facts := testsource.Check(t, tree)

	var results []result
	for f := range Analyze(t.Context(), tree, facts, rules.Default(), opts...) {
		results = append(results, result{f.Rule.ID, tree.Text()[f.Span.Start:f.Span.End], f.Message()})
	}

	return results
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", source)

	got := analyze(t, tree)

	want := []result{
		{rules.SimpleAssignmentID, "f |= true", "Replace with simple assignment"},
		{rules.DefaultArgumentID, "22", `The parameter "a" has the same default value`},
		{rules.DefaultArgumentID, "3", `The parameter "b" has the same default value`},
		{rules.CatchClauseID, "catch\n        {\n            throw;\n        }", "Catch clause with a single 'throw' statement is redundant"},
	}

	assert.Equal(t, want, got)
}

func TestAnalyzeStop(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", source)
	facts := testsource.Check(t, tree)

	var count int
	for range Analyze(t.Context(), tree, facts, rules.Default()) {
		count++

		break
	}

	assert.Equal(t, 1, count)
}

func TestAnalyzeCanceled(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", source)
	facts := testsource.Check(t, tree)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	findings := slices.Collect(Analyze(ctx, tree, facts, rules.Default()))
	assert.Empty(t, findings)
}

func TestSuppressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "none",
			src:  "\t\tf |= true;\n\t\tg &= false;",
			want: []string{"f |= true", "g &= false"},
		},
		{
			name: "nolint",
			src:  "\t\tf |= true; //nolint:redundancy\n\t\tg &= false;",
			want: []string{"g &= false"},
		},
		{
			name: "nolint other linter",
			src:  "\t\tf |= true; //nolint:unused\n\t\tg &= false;",
			want: []string{"f |= true", "g &= false"},
		},
		{
			name: "disable once by name",
			src:  "\t\t// ReSharper disable once ReplaceWithSimpleAssignment\n\t\tf |= true;\n\t\tg &= false;",
			want: []string{"g &= false"},
		},
		{
			name: "disable once other rule",
			src:  "\t\t// ReSharper disable once RedundantCatchClause\n\t\tf |= true;",
			want: []string{"f |= true"},
		},
		{
			name: "disable and restore",
			src:  "\t\t// ReSharper disable ReplaceWithSimpleAssignment\n\t\tf |= true;\n\t\t// ReSharper restore ReplaceWithSimpleAssignment\n\t\tg &= false;",
			want: []string{"g &= false"},
		},
		{
			name: "pragma by id",
			src:  "#pragma warning disable RD0001\n\t\tf |= true;\n#pragma warning restore RD0001\n\t\tg &= false;",
			want: []string{"g &= false"},
		},
		{
			name: "pragma all",
			src:  "#pragma warning disable\n\t\tf |= true;\n\t\tg &= false;",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)

			var got []string
			for _, r := range analyze(t, tree) {
				got = append(got, r.Text)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuppressionsDisabled(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\tf |= true; //nolint:redundancy")

	assert.Len(t, analyze(t, tree, WithSuppressions(false)), 1)
}

func TestGeneratedSkipped(t *testing.T) {
	t.Parallel()

	const src = `class Test
{
    [GeneratedCode("tool", "1.0")]
    void Generated() { f |= true; }

    void Method() { g |= true; }
}
`

	tree := testsource.ParseFile(t, "Test.cs", src)

	got := analyze(t, tree)
	require.Len(t, got, 1)
	assert.Equal(t, "g |= true", got[0].Text)

	generated := testsource.ParseFile(t, "Test.g.cs", src)
	assert.Empty(t, analyze(t, generated))
	assert.Len(t, analyze(t, generated, WithGenerated(true)), 2)
}

func TestRuleErrors(t *testing.T) {
	t.Parallel()

	failing := rule.Rule{
		ID:      "TEST",
		Name:    "Failing",
		Message: "failing",
		Enabled: true,
		Kinds:   syntax.Kinds(syntax.ExpressionStatement),
		Check: func(c syntax.Cursor, _ semantic.Facts) ([]rule.Match, error) {
			if c.ChildIndex()%2 == 1 {
				return nil, fmt.Errorf("%w: test", semantic.ErrUnresolved)
			}

			return []rule.Match{{}}, nil
		},
	}

	registry, err := rule.NewRegistry(failing)
	require.NoError(t, err)

	tree := testsource.Parse(t, "\t\ta();\n\t\tb();\n\t\tc();")
	facts := testsource.Check(t, tree)

	var got []string
	for f := range Analyze(t.Context(), tree, facts, registry) {
		got = append(got, tree.Text()[f.Span.Start:f.Span.End])
	}

	assert.Equal(t, []string{"b();"}, got)
}
