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

package sema

import (
	"strings"

	"fillmore-labs.com/redundancy/semantic"
	"fillmore-labs.com/redundancy/syntax"
)

// named is a type known by its simple name.
type named string

func (t named) String() string { return string(t) }

const object = "Object"

// builtin maps exception types of the base class library to their base class.
var builtin = map[string]string{
	"Exception":                     object,
	"SystemException":               "Exception",
	"ApplicationException":          "Exception",
	"AggregateException":            "Exception",
	"ArgumentException":             "SystemException",
	"ArgumentNullException":         "ArgumentException",
	"ArgumentOutOfRangeException":   "ArgumentException",
	"ArithmeticException":           "SystemException",
	"DivideByZeroException":         "ArithmeticException",
	"OverflowException":             "ArithmeticException",
	"FormatException":               "SystemException",
	"IndexOutOfRangeException":      "SystemException",
	"InvalidCastException":          "SystemException",
	"InvalidOperationException":     "SystemException",
	"ObjectDisposedException":       "InvalidOperationException",
	"NotImplementedException":       "SystemException",
	"NotSupportedException":         "SystemException",
	"NullReferenceException":        "SystemException",
	"OperationCanceledException":    "SystemException",
	"TaskCanceledException":         "OperationCanceledException",
	"OutOfMemoryException":          "SystemException",
	"StackOverflowException":        "SystemException",
	"TimeoutException":              "SystemException",
	"UnauthorizedAccessException":   "SystemException",
	"KeyNotFoundException":          "SystemException",
	"IOException":                   "SystemException",
	"FileNotFoundException":         "IOException",
	"DirectoryNotFoundException":    "IOException",
	"EndOfStreamException":          "IOException",
	"PathTooLongException":          "IOException",
	"HttpRequestException":          "Exception",
	"JsonException":                 "Exception",
	"XmlException":                  "SystemException",
	"SerializationException":        "SystemException",
	"SecurityException":             "SystemException",
	"PlatformNotSupportedException": "NotSupportedException",
	"InvalidProgramException":       "SystemException",
	"RankException":                 "SystemException",
	"ArrayTypeMismatchException":    "SystemException",
	"NotFiniteNumberException":      "ArithmeticException",
	"DuplicateWaitObjectException":  "ArgumentException",
	"TypeInitializationException":   "SystemException",
	"TargetInvocationException":     "ApplicationException",
	"BadImageFormatException":       "SystemException",
}

// simpleName strips namespace qualifiers, global aliases and type arguments.
func simpleName(name string) string {
	name = strings.Join(strings.Fields(name), "")
	name = strings.TrimPrefix(name, "global::")

	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if i := strings.LastIndexAny(name, ".:"); i >= 0 {
		name = name[i+1:]
	}

	if name == "object" {
		return object
	}

	return name
}

// resolve returns the canonical name of a type name, if the type is known.
func (m *Model) resolve(name string) (string, bool) {
	name = simpleName(name)
	if target, ok := m.aliases[name]; ok {
		name = target
	}

	if _, ok := m.classes[name]; ok {
		return name, true
	}

	if _, ok := builtin[name]; ok || name == object {
		return name, true
	}

	return "", false
}

// base returns the base class of a known type.
func (m *Model) base(name string) (string, bool) {
	if cl, ok := m.classes[name]; ok {
		for _, b := range cl.bases {
			if name, ok := m.resolve(b); ok {
				return name, true
			}

			if isInterfaceName(b) {
				continue
			}

			return "", false
		}

		return object, true
	}

	if b, ok := builtin[name]; ok {
		return b, true
	}

	return "", false
}

// isInterfaceName follows the convention of naming interfaces IName.
func isInterfaceName(name string) bool {
	return len(name) > 1 && name[0] == 'I' && 'A' <= name[1] && name[1] <= 'Z'
}

// TypeOf implements [semantic.Facts].
func (m *Model) TypeOf(n syntax.Cursor) (semantic.Type, bool) {
	switch n.Kind() {
	case syntax.CatchClause:
		decl, ok := n.ChildOfKind(syntax.CatchDeclaration)
		if !ok {
			return nil, false
		}

		return m.TypeOf(decl)

	case syntax.CatchDeclaration:
		for d := range n.Children() {
			if d.Is(syntax.TypeName, syntax.Identifier) {
				return m.TypeOf(d)
			}
		}

		return nil, false

	case syntax.TypeName, syntax.Identifier:
		name, ok := m.resolve(n.Text())
		if !ok {
			return nil, false
		}

		return named(name), true

	default:
		return nil, false
	}
}

// DerivesFrom implements [semantic.Facts].
func (m *Model) DerivesFrom(t, base semantic.Type) (derived, ok bool) {
	tn, ok1 := t.(named)
	bn, ok2 := base.(named)

	if !ok1 || !ok2 {
		return false, false
	}

	seen := make(map[string]struct{})
	for name := string(tn); ; {
		if name == string(bn) {
			return true, true
		}

		if name == object {
			return false, true
		}

		if _, ok := seen[name]; ok {
			return false, false
		}

		seen[name] = struct{}{}

		next, ok := m.base(name)
		if !ok {
			return false, false
		}

		name = next
	}
}
