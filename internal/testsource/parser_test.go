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

package testsource_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/redundancy/internal/testsource"
	"fillmore-labs.com/redundancy/syntax"
)

func TestParseShapes(t *testing.T) {
	t.Parallel()

	tree := Parse(t, `		try
		{
			flag |= true;
		}
		// rethrow
		catch (System.IO.IOException e) when (e != null)
		{
			throw;
		}
		Bar(foo: 22, this[1], new Test(1, 2));`)

	try := Find(t, tree, syntax.TryStatement, 0)
	if got, want := try.NumChildren(), 3; got != want {
		t.Fatalf("Got %d try children, want %d", got, want)
	}

	clause := try.Child(2)
	if got, want := clause.Kind(), syntax.CatchClause; got != want {
		t.Fatalf("Got %s, want %s", got, want)
	}

	if got, want := clause.Node().Leading().String(), "\t\t// rethrow\n\t\t"; got != want {
		t.Errorf("Got leading trivia %q, want %q", got, want)
	}

	decl, ok := clause.ChildOfKind(syntax.CatchDeclaration)
	if !ok {
		t.Fatal("Missing catch declaration")
	}

	if got, want := decl.Child(1).Text(), "System.IO.IOException"; got != want {
		t.Errorf("Got type %q, want %q", got, want)
	}

	if _, ok := clause.ChildOfKind(syntax.CatchFilter); !ok {
		t.Error("Missing catch filter")
	}

	assign := Find(t, tree, syntax.OrAssignment, 0)
	if got, want := assign.Text(), "flag |= true"; got != want {
		t.Errorf("Got assignment %q, want %q", got, want)
	}

	list := Find(t, tree, syntax.ArgumentList, 0)
	if got, want := list.Text(), "(foo: 22, this[1], new Test(1, 2))"; got != want {
		t.Errorf("Got argument list %q, want %q", got, want)
	}

	if _, ok := list.Child(1).ChildOfKind(syntax.NameColon); !ok {
		t.Error("Missing name colon")
	}

	if got, want := Find(t, tree, syntax.ElementAccess, 0).Text(), "this[1]"; got != want {
		t.Errorf("Got element access %q, want %q", got, want)
	}

	if got, want := Find(t, tree, syntax.ObjectCreation, 0).Text(), "new Test(1, 2)"; got != want {
		t.Errorf("Got object creation %q, want %q", got, want)
	}
}

func TestParseDeclarations(t *testing.T) {
	t.Parallel()

	const src = `using Alias = System.Exception;

namespace N
{
    [Serializable]
    public class MyException : Alias, IDisposable
    {
        private const int Answer = 42;

        public MyException(int code = Answer) { }

        public int this[int a, int b = 2] { get { return a; } }

        void Foo(string a1 = "a1", params string[] rest) => Bar();
    }
}
`

	tree := ParseFile(t, "My.cs", src)

	for _, kind := range []syntax.Kind{
		syntax.UsingDirective, syntax.NamespaceDecl, syntax.ClassDecl, syntax.BaseList,
		syntax.AttributeList, syntax.FieldDecl, syntax.ConstructorDecl, syntax.IndexerDecl,
		syntax.MethodDecl, syntax.EqualsValue,
	} {
		Find(t, tree, kind, 0)
	}

	method := Find(t, tree, syntax.MethodDecl, 0)
	params, ok := method.ChildOfKind(syntax.ParameterList)
	if !ok {
		t.Fatal("Missing parameter list")
	}

	if got, want := params.PrevSibling().Text(), "Foo"; got != want {
		t.Errorf("Got method name %q, want %q", got, want)
	}

	if got, want := params.Child(3).Text(), "params string[] rest"; got != want {
		t.Errorf("Got parameter %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	if _, err := ParseSource("Bad.cs", "class { }"); !errors.Is(err, ErrSyntax) {
		t.Errorf("Got error %v, want %v", err, ErrSyntax)
	}

	if _, err := ParseSource("Bad.cs", `class A { string s = "open; }`); !errors.Is(err, ErrSyntax) {
		t.Errorf("Got error %v, want %v", err, ErrSyntax)
	}
}
