package ir

import (
	"cmp"
	"math"
	"strings"
)

// Equal reports whether a and b are identical trees: same types, widths,
// string bounds, key order and contents. NaN equals NaN and the two
// signed zeros differ, so Equal matches what a round trip preserves.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.typ != b.typ {
		return false
	}
	switch a.typ {
	case I8Type, I16Type, I32Type, I64Type:
		return a.i == b.i
	case U8Type, U16Type, U32Type, U64Type:
		return a.u == b.u
	case F32Type, F64Type:
		return math.Float64bits(a.f) == math.Float64bits(b.f) ||
			(math.IsNaN(a.f) && math.IsNaN(b.f))
	case StrType:
		return a.s == b.s && a.max == b.max
	case BoolType:
		return a.b == b.b
	case NullType:
		return true
	case ObjectType:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for i, k := range a.fields {
			if b.fields[i] != k || !Equal(a.values[i], b.values[i]) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.values) != len(b.values) {
			return false
		}
		for i := range a.values {
			if !Equal(a.values[i], b.values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two values by content.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Widths and string bounds are ignored: 5i8 and 5 compare equal, as do
// "x"s4 and "x".
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA, rankB := rank(a.typ), rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch {
	case a.typ.IsNumber():
		return compareNumbers(a, b)
	case a.typ == StrType:
		return strings.Compare(a.s, b.s)
	case a.typ == BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case a.typ == ArrayType:
		return compareArrays(a, b)
	case a.typ == ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < Str < Array < Object
func rank(t Type) int {
	switch {
	case t == NullType:
		return 0
	case t == BoolType:
		return 1
	case t.IsNumber():
		return 2
	case t == StrType:
		return 3
	case t == ArrayType:
		return 4
	case t == ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	switch {
	case a.typ.IsSigned() && b.typ.IsSigned():
		return cmp.Compare(a.i, b.i)
	case a.typ.IsUnsigned() && b.typ.IsUnsigned():
		return cmp.Compare(a.u, b.u)
	case a.typ.IsSigned() && b.typ.IsUnsigned():
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.typ.IsUnsigned() && b.typ.IsSigned():
		return -compareNumbers(b, a)
	}
	// at least one float; cmp.Compare orders NaN first.
	return cmp.Compare(a.numberFloat(), b.numberFloat())
}

func (v *Value) numberFloat() float64 {
	switch {
	case v.typ.IsSigned():
		return float64(v.i)
	case v.typ.IsUnsigned():
		return float64(v.u)
	}
	return v.f
}

func compareArrays(a, b *Value) int {
	lenA := len(a.values)
	lenB := len(b.values)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Value) int {
	lenA := len(a.fields)
	lenB := len(b.fields)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := strings.Compare(a.fields[i], b.fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
