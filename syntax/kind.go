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

package syntax

import "iter"

//go:generate go tool stringer -type Kind -linecomment

// Kind tags a [Node]. The set of kinds is closed.
type Kind uint8

const (
	Invalid Kind = iota // invalid

	// Leaves.
	Token      // token
	Identifier // identifier
	Literal    // literal
	TypeName   // type name

	// Declarations.
	CompilationUnit     // compilation unit
	UsingDirective      // using directive
	NamespaceDecl       // namespace declaration
	ClassDecl           // class declaration
	BaseList            // base list
	DeclarationList     // declaration list
	AttributeList       // attribute list
	FieldDecl           // field declaration
	MethodDecl          // method declaration
	ConstructorDecl     // constructor declaration
	IndexerDecl         // indexer declaration
	ParameterList       // parameter list
	Parameter           // parameter
	EqualsValue         // equals value clause
	VariableDeclaration // variable declaration
	VariableDeclarator  // variable declarator

	// Statements.
	Block               // block
	LocalDeclaration    // local declaration
	ExpressionStatement // expression statement
	ReturnStatement     // return statement
	ThrowStatement      // throw statement
	TryStatement        // try statement
	CatchClause         // catch clause
	CatchDeclaration    // catch declaration
	CatchFilter         // catch filter
	FinallyClause       // finally clause

	// Expressions.
	SimpleAssignment   // simple assignment
	OrAssignment       // or assignment
	AndAssignment      // and assignment
	CompoundAssignment // compound assignment
	Invocation         // invocation
	ObjectCreation     // object creation
	ElementAccess      // element access
	MemberAccess       // member access
	ArgumentList       // argument list
	Argument           // argument
	NameColon          // name colon
	Parenthesized      // parenthesized expression
	PrefixUnary        // prefix unary expression

	Other // other
	Error // error
)

// NumKinds is the number of valid kinds, usable as an array length for kind-indexed tables.
const NumKinds = int(Error) + 1

// Valid reports whether k is a member of the enumeration.
func (k Kind) Valid() bool { return k > Invalid && int(k) < NumKinds }

// Leaf reports whether nodes of this kind are tokens.
func (k Kind) Leaf() bool {
	switch k {
	case Token, Identifier, Literal, TypeName:
		return true

	default:
		return false
	}
}

// AssignmentKind returns the assignment kind for an assignment operator.
func AssignmentKind(operator string) Kind {
	switch operator {
	case "=":
		return SimpleAssignment

	case "|=":
		return OrAssignment

	case "&=":
		return AndAssignment

	default:
		return CompoundAssignment
	}
}

// KindSet is a set of kinds.
type KindSet uint64

// Kinds returns the set containing the given kinds.
func Kinds(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}

	return s
}

// Contains reports whether k is a member of s.
func (s KindSet) Contains(k Kind) bool { return s&(1<<k) != 0 }

// Empty reports whether s has no members.
func (s KindSet) Empty() bool { return s == 0 }

// All yields the members of s in ascending order.
func (s KindSet) All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range Kind(NumKinds) {
			if s.Contains(k) && !yield(k) {
				return
			}
		}
	}
}
