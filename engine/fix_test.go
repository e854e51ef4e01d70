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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/sema"
	"fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/rule"
	"fillmore-labs.com/redundancy/rules"
	"fillmore-labs.com/redundancy/syntax"
)

func TestFixAll(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", source)

	fixed, applied, err := FixAll(t.Context(), tree, sema.Binder, rules.Default())
	require.NoError(t, err)

	const want = `class Test
{
    void Bar(int a = 22, int b = 3) { }

    void Method()
    {
        bool f = false;
        f = true;
        {
            Bar();
        }
    }
}
`

	assert.Equal(t, want, fixed.Text())
	assert.Equal(t, 3, applied)
	assert.Equal(t, source, tree.Text(), "original tree changed")

	again, applied, err := FixAll(t.Context(), fixed, sema.Binder, rules.Default())
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
	assert.Same(t, fixed, again)
}

func TestFixAllPassLimit(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", source)

	fixed, applied, err := FixAll(t.Context(), tree, sema.Binder, rules.Default(), WithMaxPasses(1))
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Contains(t, fixed.Text(), "try")
}

func TestSelectFixes(t *testing.T) {
	t.Parallel()

	const src = `class Test
{
    void Bar(int a = 22, int b = 3) { }

    void Method()
    {
        Bar(22, 3);
    }
}
`

	tree := testsource.ParseFile(t, "Test.cs", src)
	facts := testsource.Check(t, tree)

	var findings []rule.Finding
	for f := range Analyze(t.Context(), tree, facts, rules.Default()) {
		findings = append(findings, f)
	}

	require.Len(t, findings, 2)

	fixes := SelectFixes(tree, findings)
	require.Len(t, fixes, 1)

	fixed, err := rewrite.ApplyFixes(tree, fixes...)
	require.NoError(t, err)
	assert.Contains(t, fixed.Text(), "Bar();")

	single, err := rewrite.ApplyFix(tree, *findings[1].Fix)
	require.NoError(t, err)
	assert.Contains(t, single.Text(), "Bar(22);")

	assert.Empty(t, SelectFixes(fixed, findings), "stale fixes selected")

	list := testsource.Find(t, fixed, syntax.ArgumentList, 0)
	assert.Equal(t, "()", list.Text())
}
