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

package csharp_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/redundancy/internal/csharp"
	"fillmore-labs.com/redundancy/engine"
	"fillmore-labs.com/redundancy/internal/sema"
	"fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/rules"
	"fillmore-labs.com/redundancy/syntax"
)

const source = `// <copyright file="Test.cs">
using System;
using Failure = System.IO.IOException;

namespace Sample
{
    class Test
    {
        const int Answer = 42;

        void Bar(int foo = 22, int test = 3) { }

        void Method(bool flag)
        {
#region Work
            flag |= true; /* trailing */
#endregion
            flag &= false;
            const int s = 22;
            try
            {
                Bar(s, Answer - 39);
            }
            // only rethrows
            catch (Failure)
            {
                throw;
            }
            catch (ArgumentException e) when (e.ParamName != null)
            {
                throw;
            }
        }
    }
}
`

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, src := range []string{source, "", "  \n// comment only\n", "class A { void M() { x |= true } }"} {
		tree, err := Parse(t.Context(), "Test.cs", []byte(src))
		require.NoError(t, err)

		assert.Equal(t, src, tree.Text())

		last := tree.Root().LastChild()
		assert.True(t, last.Node().IsToken() && last.Text() == "", "missing end of file token")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tree, err := Parse(t.Context(), "Bad.cs", []byte("class A { void M() { x |= true } }"))
	require.NoError(t, err)
	assert.True(t, HasErrors(tree))

	tree, err = Parse(t.Context(), "Test.cs", []byte(source))
	require.NoError(t, err)
	assert.False(t, HasErrors(tree))
}

func TestParseErrorText(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"class A { void M() { x |= true } }",
		"class A { void M() { int x = 1 2; } }",
		"class A { void M() { @@ } }\n",
	} {
		tree, err := Parse(t.Context(), "Bad.cs", []byte(src))
		require.NoError(t, err)
		assert.True(t, HasErrors(tree), "Got no errors for %q", src)
		assert.Equal(t, src, tree.Text())
	}
}

func TestParseShapes(t *testing.T) {
	t.Parallel()

	tree, err := Parse(t.Context(), "Test.cs", []byte(source))
	require.NoError(t, err)

	count := func(kind syntax.Kind) int {
		n := 0
		for range tree.Root().Preorder(kind) {
			n++
		}

		return n
	}

	assert.Equal(t, 1, count(syntax.OrAssignment))
	assert.Equal(t, 1, count(syntax.AndAssignment))
	assert.Equal(t, 1, count(syntax.TryStatement))
	assert.Equal(t, 2, count(syntax.CatchClause))
	assert.Equal(t, 1, count(syntax.CatchFilter))
	assert.Equal(t, 2, count(syntax.ThrowStatement))

	assign := testsource.Find(t, tree, syntax.OrAssignment, 0)
	assert.Equal(t, "flag |= true", assign.Text())
	assert.Equal(t, []string{"#region Work"}, assign.Node().Leading().Comments())

	clause := testsource.Find(t, tree, syntax.CatchClause, 0)
	assert.Equal(t, []string{"// only rethrows"}, clause.Node().Leading().Comments())

	decl, ok := clause.ChildOfKind(syntax.CatchDeclaration)
	require.True(t, ok)
	assert.Equal(t, "(Failure)", decl.Text())

	throw := testsource.Find(t, tree, syntax.ThrowStatement, 0)
	assert.Equal(t, 2, throw.NumChildren())
}

func TestFrontEndsAgree(t *testing.T) {
	t.Parallel()

	const src = `class Test
{
    void Bar(int foo = 22, int test = 3) { }

    void Method(bool flag)
    {
        const int s = 22;
        flag |= true;
        Bar(s, 3);
        try
        {
            Bar(21);
        }
        catch (System.IO.IOException)
        {
            throw;
        }
        catch (Exception e)
        {
            Log(e);
        }
    }
}
`

	parsed, err := Parse(t.Context(), "Test.cs", []byte(src))
	require.NoError(t, err)

	fixture := testsource.ParseFile(t, "Test.cs", src)

	assert.Equal(t, findings(t, fixture), findings(t, parsed))

	fixed, applied, err := engine.FixAll(t.Context(), parsed, sema.Binder, rules.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Contains(t, fixed.Text(), "flag = true;")
	assert.Contains(t, fixed.Text(), "Bar();")
}

func findings(t *testing.T, tree *syntax.Tree) []string {
	t.Helper()

	facts := testsource.Check(t, tree)

	var result []string
	for f := range engine.Analyze(t.Context(), tree, facts, rules.Default()) {
		result = append(result, f.Rule.ID+" "+tree.Text()[f.Span.Start:f.Span.End])
	}

	return slices.Clip(result)
}
