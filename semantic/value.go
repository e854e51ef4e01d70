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

package semantic

import (
	"go/constant"
	"go/token"
	"math"
	"strconv"
	"strings"
)

// Basic is the C# type of a constant. [UnknownType] stands for every type
// without constant conversions of its own, like object, dynamic, enums or
// nullable types.
type Basic uint8

const (
	UnknownType Basic = iota
	BoolType
	CharType
	StringType
	SByteType
	ByteType
	ShortType
	UShortType
	IntType
	UIntType
	LongType
	ULongType
	FloatType
	DoubleType
	DecimalType
	NullType
)

var basicNames = [...]string{
	UnknownType: "unknown",
	BoolType:    "bool",
	CharType:    "char",
	StringType:  "string",
	SByteType:   "sbyte",
	ByteType:    "byte",
	ShortType:   "short",
	UShortType:  "ushort",
	IntType:     "int",
	UIntType:    "uint",
	LongType:    "long",
	ULongType:   "ulong",
	FloatType:   "float",
	DoubleType:  "double",
	DecimalType: "decimal",
	NullType:    "null",
}

func (b Basic) String() string {
	if int(b) < len(basicNames) {
		return basicNames[b]
	}

	return "Basic(" + strconv.Itoa(int(b)) + ")"
}

// BasicType returns the type named by a C# keyword or its System alias.
func BasicType(name string) Basic {
	switch strings.TrimPrefix(strings.TrimPrefix(name, "global::"), "System.") {
	case "bool", "Boolean":
		return BoolType
	case "char", "Char":
		return CharType
	case "string", "String":
		return StringType
	case "sbyte", "SByte":
		return SByteType
	case "byte", "Byte":
		return ByteType
	case "short", "Int16":
		return ShortType
	case "ushort", "UInt16":
		return UShortType
	case "int", "Int32":
		return IntType
	case "uint", "UInt32":
		return UIntType
	case "long", "Int64":
		return LongType
	case "ulong", "UInt64":
		return ULongType
	case "float", "Single":
		return FloatType
	case "double", "Double":
		return DoubleType
	case "decimal", "Decimal":
		return DecimalType
	default:
		return UnknownType
	}
}

// Integral reports whether b is an integral type, char included.
func (b Basic) Integral() bool { return CharType == b || SByteType <= b && b <= ULongType }

// Real reports whether b is float or double.
func (b Basic) Real() bool { return b == FloatType || b == DoubleType }

var integralRanges = map[Basic][2]constant.Value{
	CharType:   {constant.MakeInt64(0), constant.MakeInt64(math.MaxUint16)},
	SByteType:  {constant.MakeInt64(math.MinInt8), constant.MakeInt64(math.MaxInt8)},
	ByteType:   {constant.MakeInt64(0), constant.MakeInt64(math.MaxUint8)},
	ShortType:  {constant.MakeInt64(math.MinInt16), constant.MakeInt64(math.MaxInt16)},
	UShortType: {constant.MakeInt64(0), constant.MakeInt64(math.MaxUint16)},
	IntType:    {constant.MakeInt64(math.MinInt32), constant.MakeInt64(math.MaxInt32)},
	UIntType:   {constant.MakeInt64(0), constant.MakeInt64(math.MaxUint32)},
	LongType:   {constant.MakeInt64(math.MinInt64), constant.MakeInt64(math.MaxInt64)},
	ULongType:  {constant.MakeInt64(0), constant.MakeUint64(math.MaxUint64)},
}

// Fits reports whether the integer c is in the range of the integral type b.
func (b Basic) Fits(c constant.Value) bool {
	r, ok := integralRanges[b]

	return ok && c.Kind() == constant.Int &&
		constant.Compare(r[0], token.LEQ, c) && constant.Compare(c, token.LEQ, r[1])
}

// widens reports whether every value of the integral type from is a value of b.
func (b Basic) widens(from Basic) bool {
	r, ok := integralRanges[from]

	return ok && b.Fits(r[0]) && b.Fits(r[1])
}

// Value is a typed compile-time constant.
type Value struct {
	c     constant.Value
	typ   Basic
	scale int
}

// Null is the null constant.
var Null = Value{typ: NullType}

// MakeValue returns the constant c of type t. Reals are rounded to the
// precision of t.
func MakeValue(t Basic, c constant.Value) Value {
	if c == nil || c.Kind() == constant.Unknown {
		return Value{}
	}

	switch t {
	case FloatType:
		f, _ := constant.Float32Val(constant.ToFloat(c))
		c = constant.MakeFloat64(float64(f))

	case DoubleType:
		f, _ := constant.Float64Val(constant.ToFloat(c))
		c = constant.MakeFloat64(f)
	}

	return Value{c: c, typ: t}
}

// MakeDecimal returns a decimal constant with the given number of fractional
// digits. Decimals of equal value but different scale are distinct.
func MakeDecimal(c constant.Value, scale int) Value {
	return Value{c: c, typ: DecimalType, scale: scale}
}

// Bool returns a boolean constant.
func Bool(b bool) Value { return Value{c: constant.MakeBool(b), typ: BoolType} }

// Int returns an int constant.
func Int(i int64) Value { return Value{c: constant.MakeInt64(i), typ: IntType} }

// String returns a string constant.
func String(s string) Value { return Value{c: constant.MakeString(s), typ: StringType} }

// IsNull reports whether v is the null constant.
func (v Value) IsNull() bool { return v.typ == NullType }

// Known reports whether v holds a value.
func (v Value) Known() bool {
	return v.typ == NullType || v.typ != UnknownType && v.c != nil && v.c.Kind() != constant.Unknown
}

// Type returns the type of v.
func (v Value) Type() Basic { return v.typ }

// Scale returns the number of fractional digits of a decimal.
func (v Value) Scale() int { return v.scale }

// Constant returns the underlying constant, nil for null.
func (v Value) Constant() constant.Value { return v.c }

// Equal reports whether v and o are the same constant of the same type.
func (v Value) Equal(o Value) bool {
	if !v.Known() || !o.Known() || v.typ != o.typ || v.scale != o.scale {
		return false
	}

	if v.typ == NullType {
		return true
	}

	return constant.Compare(v.c, token.EQL, o.c)
}

// Convert applies the implicit constant conversion of v to type t. Conversion
// to [UnknownType] keeps v unchanged. ok is false when C# does not convert v
// implicitly.
func (v Value) Convert(t Basic) (Value, bool) {
	switch {
	case !v.Known():
		return Value{}, false

	case t == UnknownType, t == v.typ:
		return v, true

	case v.typ == NullType:
		return v, t == StringType

	case t == CharType:
		return Value{}, false

	case t.Integral():
		if !v.typ.Integral() || !t.Fits(v.c) {
			return Value{}, false
		}

		if !t.widens(v.typ) && v.typ != IntType && (v.typ != LongType || t != ULongType) {
			return Value{}, false
		}

		return Value{c: v.c, typ: t}, true

	case t == FloatType:
		if !v.typ.Integral() {
			return Value{}, false
		}

	case t == DoubleType:
		if !v.typ.Integral() && v.typ != FloatType {
			return Value{}, false
		}

	case t == DecimalType:
		if !v.typ.Integral() {
			return Value{}, false
		}

		return MakeDecimal(v.c, 0), true

	default:
		return Value{}, false
	}

	r := MakeValue(t, v.c)

	return r, r.Known()
}

func (v Value) String() string {
	switch {
	case v.typ == NullType:
		return "null"

	case v.c == nil:
		return "unknown"

	default:
		return v.c.ExactString() + " (" + v.typ.String() + ")"
	}
}
