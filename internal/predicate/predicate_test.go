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

package predicate_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"

	. "fillmore-labs.com/redundancy/internal/predicate"
)

func TestTrivialBooleanAssignment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{"f |= true;", true},
		{"f &= false;", true},
		{"f |= false;", false},
		{"f &= true;", false},
		{"f |= g;", false},
		{"f |= (true);", false},
		{"f = true;", false},
		{"n += 1;", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, "\t\t"+tt.src)
			stmt := testsource.Find(t, tree, syntax.ExpressionStatement, 0)

			got, err := TrivialBooleanAssignment(stmt.FirstChild())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestAssignmentMalformed(t *testing.T) {
	t.Parallel()

	broken := syntax.NewNode(syntax.OrAssignment,
		syntax.NewToken(syntax.Identifier, nil, "f", nil),
		syntax.NewToken(syntax.Token, nil, "|=", nil))
	tree := syntax.NewTree("broken", broken)

	if _, err := TrivialBooleanAssignment(tree.Root()); !errors.Is(err, syntax.ErrMalformed) {
		t.Errorf("Got error %v, want %v", err, syntax.ErrMalformed)
	}
}

func TestRedundantCatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []bool
	}{
		{
			name: "only rethrow",
			src:  "try { F(); } catch (Exception) { throw; }",
			want: []bool{true},
		},
		{
			name: "untyped",
			src:  "try { F(); } catch { throw; }",
			want: []bool{true},
		},
		{
			name: "with finally",
			src:  "try { F(); } catch { throw; } finally { G(); }",
			want: []bool{false},
		},
		{
			name: "throw expression",
			src:  "try { F(); } catch (Exception e) { throw e; }",
			want: []bool{false},
		},
		{
			name: "logging",
			src:  "try { F(); } catch { Log(); throw; }",
			want: []bool{false},
		},
		{
			name: "filter",
			src:  "try { F(); } catch (Exception) when (Check()) { throw; }",
			want: []bool{false},
		},
		{
			name: "derived before base handler",
			src:  "try { F(); } catch (IOException) { throw; } catch (Exception) { Log(); }",
			want: []bool{false, false},
		},
		{
			name: "unrelated handler",
			src:  "try { F(); } catch (IOException) { throw; } catch (ArgumentException) { Log(); }",
			want: []bool{true, false},
		},
		{
			name: "base handler after untyped",
			src:  "try { F(); } catch { throw; } catch (Exception) { Log(); }",
			want: []bool{false, false},
		},
		{
			name: "untyped handler",
			src:  "try { F(); } catch (ArgumentException) { throw; } catch { Log(); }",
			want: []bool{false, false},
		},
		{
			name: "all rethrow",
			src:  "try { F(); } catch (IOException) { throw; } catch (Exception) { throw; }",
			want: []bool{true, true},
		},
		{
			name: "same type handled later",
			src:  "try { F(); } catch (IOException) { throw; } catch (IOException e) { Log(e); }",
			want: []bool{false, false},
		},
		{
			name: "base rethrow before derived rethrow",
			src:  "try { F(); } catch (Exception) { throw; } catch (IOException) { throw; }",
			want: []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, "\t\t"+tt.src)
			facts := testsource.Check(t, tree)

			for i, want := range tt.want {
				clause := testsource.Find(t, tree, syntax.CatchClause, i)

				got, err := RedundantCatch(clause, facts)
				if err != nil {
					t.Fatalf("Unexpected error on clause %d: %v", i, err)
				}

				if got != want {
					t.Errorf("Got %t for clause %d, want %t", got, i, want)
				}
			}
		})
	}
}

func TestRedundantCatchUnresolved(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "\t\ttry { F(); } catch (Unknown) { throw; } catch (Exception) { Log(); }")
	facts := testsource.Check(t, tree)
	clause := testsource.Find(t, tree, syntax.CatchClause, 0)

	if _, err := RedundantCatch(clause, facts); !errors.Is(err, semantic.ErrUnresolved) {
		t.Errorf("Got error %v, want %v", err, semantic.ErrUnresolved)
	}
}

const callSource = `class Test
{
    const int Answer = 42;

    void Bar(int a = 22, int b = 3) { }

    void Foo(string a1 = "a1", string a2 = "a2", params string[] rest) { }

    void Ref(ref int r, int n = 0) { }

    const long LongOne = 1;

    void D(double d = 0.1) { }

    void O(object o = 1) { }

    void L(long n = 1) { }

    void S(string s = "\u41BC") { }

    void Method()
    {
        const string local = "a2";
        int v = 0;
        %s
    }
}
`

func TestRedundantArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		call string
		want []string
	}{
		{"Bar(22, 3);", []string{"22", "3"}},
		{"Bar(22, 4);", nil},
		{"Bar(21, 3);", []string{"3"}},
		{"Bar(b: 3, a: 1);", []string{"b: 3"}},
		{"Bar(a: 22);", []string{"a: 22"}},
		{"Bar(Answer - 20, b: (3));", []string{"b: (3)"}},
		{"Foo(\"a1\", local);", []string{"\"a1\"", "local"}},
		{"Foo(\"a1\", \"a2\", \"a3\");", nil},
		{"Ref(ref v, 0);", []string{"0"}},
		{"Bar(v, 3);", []string{"3"}},
		{"Bar(3, v);", nil},
		{"D(0.1);", []string{"0.1"}},
		{"D(0.1f);", nil},
		{"O(1);", []string{"1"}},
		{"O(1L);", nil},
		{"O(LongOne);", nil},
		{"L(1);", []string{"1"}},
		{"L(LongOne);", []string{"LongOne"}},
		{"S(\"\\x41BC\");", []string{"\"\\x41BC\""}},
		{"S(\"ABC\");", nil},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			t.Parallel()

			tree := testsource.ParseFile(t, "Test.cs", fmt.Sprintf(callSource, tt.call))
			facts := testsource.Check(t, tree)
			list := testsource.Find(t, tree, syntax.ArgumentList, 0)

			bindings, err := RedundantArguments(list, facts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			var got []string
			for _, b := range bindings {
				got = append(got, b.Arg.Text())
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRedundantArgumentsUnresolved(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "Test.cs", fmt.Sprintf(callSource, "Unknown(1);"))
	facts := testsource.Check(t, tree)
	list := testsource.Find(t, tree, syntax.ArgumentList, 0)

	if _, err := RedundantArguments(list, facts); !errors.Is(err, semantic.ErrUnresolved) {
		t.Errorf("Got error %v, want %v", err, semantic.ErrUnresolved)
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	sig := semantic.Signature{
		Name: "F",
		Params: []semantic.Parameter{
			{Name: "a"},
			{Name: "b", HasDefault: true, Default: semantic.Int(1)},
			{Name: "rest", Variadic: true},
		},
	}

	tests := []struct {
		call string
		want []int
		err  error
	}{
		{"F(1);", []int{0}, nil},
		{"F(1, 2, 3, 4);", []int{0, 1, 2, 2}, nil},
		{"F(b: 2, a: 1);", []int{1, 0}, nil},
		{"F(c: 2);", nil, semantic.ErrUnresolved},
		{"F(1, a: 2);", nil, syntax.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, "\t\t"+tt.call)
			list := testsource.Find(t, tree, syntax.ArgumentList, 0)

			bindings, err := Bind(list, sig)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			var got []int
			for _, b := range bindings {
				got = append(got, b.Param)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got parameters %v, want %v", got, tt.want)
			}
		})
	}
}
