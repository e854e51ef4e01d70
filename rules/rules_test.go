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

package rules_test

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/sema"
	"fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/rule"
	. "fillmore-labs.com/redundancy/rules"
)

// TestRules runs the archives in testdata. Each archive holds an input.cs
// source, the expected findings and optionally the result of fixing all
// findings (fixed.cs) or only the n-th finding (fix.n.cs).
func TestRules(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(file)
			require.NoError(t, err)

			sections := make(map[string]string, len(ar.Files))
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}

			input, ok := sections["input.cs"]
			require.True(t, ok, "missing input.cs")

			tree := testsource.ParseFile(t, "Test.cs", input)
			facts := testsource.Check(t, tree)

			findings := slices.Collect(engine.Analyze(t.Context(), tree, facts, Default()))
			assert.Equal(t, sections["findings"], format(tree.Text(), findings))

			fixed, _, err := engine.FixAll(t.Context(), tree, sema.Binder, Default())
			require.NoError(t, err)

			want, ok := sections["fixed.cs"]
			if !ok {
				want = input
			}

			assert.Equal(t, want, fixed.Text())

			for i, f := range findings {
				want, ok := sections[fmt.Sprintf("fix.%d.cs", i)]
				if !ok {
					continue
				}

				require.NotNil(t, f.Fix, "finding %d has no fix", i)

				got, err := rewrite.ApplyFix(tree, *f.Fix)
				require.NoError(t, err)
				assert.Equal(t, want, got.Text(), "fix %d: %s", i, f.Fix.Message)
			}
		})
	}
}

// format prints one finding per line with the first line of its source text.
func format(text string, findings []rule.Finding) string {
	var b strings.Builder
	for _, f := range findings {
		src, _, _ := strings.Cut(text[f.Span.Start:f.Span.End], "\n")
		fmt.Fprintf(&b, "%s %q: %s\n", f.Rule.ID, src, f.Message())
	}

	return b.String()
}

func TestDefault(t *testing.T) {
	t.Parallel()

	registry := Default()
	assert.Same(t, registry, Default())

	ids := make([]string, 0, len(registry.Rules()))
	for _, r := range registry.Rules() {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{SimpleAssignmentID, CatchClauseID, DefaultArgumentID}, ids)

	r, ok := registry.Lookup("redundantcatchclause")
	require.True(t, ok)
	assert.Equal(t, CatchClauseID, r.ID)
}
