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

package rewrite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/redundancy/internal/testsource"
	. "fillmore-labs.com/redundancy/rewrite"
	"fillmore-labs.com/redundancy/syntax"
)

func TestReplacePreservesTrivia(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\tx = /* a */ y; // b")
	y := testsource.Find(t, tree, syntax.Identifier, 3)
	require.Equal(t, "y", y.Text())

	repl := syntax.NewToken(syntax.Identifier, nil, "z", nil)

	got, err := ApplyFix(tree, Fix{Message: "rename", Edits: []Edit{Replace(y.Node(), repl)}})
	require.NoError(t, err)

	assert.Equal(t, testsource.Wrap("\t\tx = /* a */ z; // b"), got.Text())
	assert.Equal(t, testsource.Wrap("\t\tx = /* a */ y; // b"), tree.Text(), "original tree changed")
}

func TestRewriteSharesUnchangedNodes(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\ta = 1;\n\t\tb = 2;")
	first := testsource.Find(t, tree, syntax.ExpressionStatement, 0)
	second := testsource.Find(t, tree, syntax.ExpressionStatement, 1)

	got, err := ApplyFix(tree, Fix{Edits: []Edit{Remove(second.Node())}})
	require.NoError(t, err)

	assert.True(t, got.Contains(first.Node()), "unchanged statement not shared")
	assert.False(t, got.Contains(second.Node()))
	assert.Equal(t, testsource.Wrap("\t\ta = 1;"), got.Text())
}

func TestRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		index int
		want  string
	}{
		{
			name:  "last statement",
			src:   "\t\ta();\n\t\tb();",
			index: 1,
			want:  "\t\ta();",
		},
		{
			name:  "first statement",
			src:   "\t\ta();\n\t\tb();",
			index: 0,
			want:  "\t\tb();",
		},
		{
			name:  "leading comment moves",
			src:   "\t\ta();\n\t\t// keep\n\t\tb();\n\t\tc();",
			index: 1,
			want:  "\t\ta();\n\t\t// keep\n\t\tc();",
		},
		{
			name:  "same line",
			src:   "\t\ta(); b();\n\t\tc();",
			index: 1,
			want:  "\t\ta();\n\t\tc();",
		},
		{
			name:  "trailing comment moves",
			src:   "\t\ta();\n\t\tb(); // note\n\t\tc();",
			index: 1,
			want:  "\t\ta();\n\t\t// note\n\t\tc();",
		},
		{
			name:  "trailing comment same line",
			src:   "\t\ta(); b(); // note\n\t\tc();",
			index: 1,
			want:  "\t\ta(); // note\n\t\tc();",
		},
		{
			name:  "leading and trailing comment",
			src:   "\t\ta();\n\t\t// keep\n\t\tb(); // note\n\t\tc();",
			index: 1,
			want:  "\t\ta();\n\t\t// keep\n\t\t// note\n\t\tc();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			stmt := testsource.Find(t, tree, syntax.ExpressionStatement, tt.index)

			got, err := ApplyFix(tree, Fix{Edits: []Edit{Remove(stmt.Node())}})
			require.NoError(t, err)

			assert.Equal(t, testsource.Wrap(tt.want), got.Text())
		})
	}
}

func TestApplyFixesBulk(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\ta = 1;\n\t\tb = 2;\n\t\tc = 3;")
	one := testsource.Find(t, tree, syntax.Literal, 0)
	three := testsource.Find(t, tree, syntax.Literal, 2)

	got, err := ApplyFixes(tree,
		Fix{Edits: []Edit{Replace(three.Node(), syntax.NewToken(syntax.Literal, nil, "30", nil))}},
		Fix{Edits: []Edit{Replace(one.Node(), syntax.NewToken(syntax.Literal, nil, "10", nil))}},
	)
	require.NoError(t, err)

	assert.Equal(t, testsource.Wrap("\t\ta = 10;\n\t\tb = 2;\n\t\tc = 30;"), got.Text())
}

func TestApplyStale(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\ta = 1;")
	other := testsource.Parse(t, "\t\ta = 1;")
	lit := testsource.Find(t, other, syntax.Literal, 0)

	_, err := ApplyFix(tree, Fix{Message: "stale", Edits: []Edit{Remove(lit.Node())}})
	if !errors.Is(err, ErrUnresolvedReplacement) {
		t.Errorf("Got error %v, want %v", err, ErrUnresolvedReplacement)
	}
}

func TestApplyOverlapPanics(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\ta = 1;")
	stmt := testsource.Find(t, tree, syntax.ExpressionStatement, 0)
	lit := testsource.Find(t, tree, syntax.Literal, 0)

	defer func() {
		r := recover()

		var overlap *OverlapError
		if err, ok := r.(error); !ok || !errors.As(err, &overlap) {
			t.Fatalf("Got panic %v, want %T", r, overlap)
		}

		assert.True(t, overlap.First.Contains(overlap.Second))
	}()

	_, _ = ApplyFixes(tree, Fix{Edits: []Edit{Remove(stmt.Node())}}, Fix{Edits: []Edit{Remove(lit.Node())}})

	t.Error("Expected panic")
}
