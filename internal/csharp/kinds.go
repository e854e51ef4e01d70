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

package csharp

import "fillmore-labs.com/redundancy/syntax"

// kinds maps tree-sitter node types to syntax kinds. Unlisted types become
// [syntax.Other].
var kinds = map[string]syntax.Kind{
	"compilation_unit":                  syntax.CompilationUnit,
	"using_directive":                   syntax.UsingDirective,
	"namespace_declaration":             syntax.NamespaceDecl,
	"file_scoped_namespace_declaration": syntax.NamespaceDecl,
	"class_declaration":                 syntax.ClassDecl,
	"struct_declaration":                syntax.ClassDecl,
	"record_declaration":                syntax.ClassDecl,
	"interface_declaration":             syntax.ClassDecl,
	"base_list":                         syntax.BaseList,
	"declaration_list":                  syntax.DeclarationList,
	"attribute_list":                    syntax.AttributeList,
	"field_declaration":                 syntax.FieldDecl,
	"method_declaration":                syntax.MethodDecl,
	"constructor_declaration":           syntax.ConstructorDecl,
	"indexer_declaration":               syntax.IndexerDecl,
	"parameter_list":                    syntax.ParameterList,
	"bracketed_parameter_list":          syntax.ParameterList,
	"parameter":                         syntax.Parameter,
	"equals_value_clause":               syntax.EqualsValue,
	"variable_declaration":              syntax.VariableDeclaration,
	"variable_declarator":               syntax.VariableDeclarator,
	"block":                             syntax.Block,
	"local_declaration_statement":       syntax.LocalDeclaration,
	"expression_statement":              syntax.ExpressionStatement,
	"return_statement":                  syntax.ReturnStatement,
	"throw_statement":                   syntax.ThrowStatement,
	"try_statement":                     syntax.TryStatement,
	"catch_clause":                      syntax.CatchClause,
	"catch_declaration":                 syntax.CatchDeclaration,
	"catch_filter_clause":               syntax.CatchFilter,
	"finally_clause":                    syntax.FinallyClause,
	"invocation_expression":             syntax.Invocation,
	"object_creation_expression":        syntax.ObjectCreation,
	"element_access_expression":         syntax.ElementAccess,
	"member_access_expression":          syntax.MemberAccess,
	"argument_list":                     syntax.ArgumentList,
	"bracketed_argument_list":           syntax.ArgumentList,
	"argument":                          syntax.Argument,
	"name_colon":                        syntax.NameColon,
	"parenthesized_expression":          syntax.Parenthesized,
	"prefix_unary_expression":           syntax.PrefixUnary,
	"identifier":                        syntax.Identifier,
	"ERROR":                             syntax.Error,
}

// collapsed node types become a single token of the given kind, keeping their
// source text verbatim.
var collapsed = map[string]syntax.Kind{
	"boolean_literal":                syntax.Literal,
	"character_literal":              syntax.Literal,
	"integer_literal":                syntax.Literal,
	"null_literal":                   syntax.Literal,
	"real_literal":                   syntax.Literal,
	"string_literal":                 syntax.Literal,
	"verbatim_string_literal":        syntax.Literal,
	"raw_string_literal":             syntax.Literal,
	"interpolated_string_expression": syntax.Literal,
	"default_expression":             syntax.Literal,
	"predefined_type":                syntax.TypeName,
	"implicit_type":                  syntax.TypeName,
	"qualified_name":                 syntax.TypeName,
	"alias_qualified_name":           syntax.TypeName,
	"generic_name":                   syntax.TypeName,
	"array_type":                     syntax.TypeName,
	"nullable_type":                  syntax.TypeName,
	"pointer_type":                   syntax.TypeName,
	"tuple_type":                     syntax.TypeName,
	"this_expression":                syntax.Token,
	"base_expression":                syntax.Token,
	"modifier":                       syntax.Token,
	"parameter_modifier":             syntax.Token,
	"assignment_operator":            syntax.Token,
}
