package ir

import (
	"fmt"
	"math"
)

// Type is the variant tag of a Value. The order matches the value type
// codes of the GBLN C ABI.
type Type int

const (
	I8Type Type = iota
	I16Type
	I32Type
	I64Type
	U8Type
	U16Type
	U32Type
	U64Type
	F32Type
	F64Type
	StrType
	BoolType
	NullType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	I8Type:     "I8",
	I16Type:    "I16",
	I32Type:    "I32",
	I64Type:    "I64",
	U8Type:     "U8",
	U16Type:    "U16",
	U32Type:    "U32",
	U64Type:    "U64",
	F32Type:    "F32",
	F64Type:    "F64",
	StrType:    "Str",
	BoolType:   "Bool",
	NullType:   "Null",
	ObjectType: "Object",
	ArrayType:  "Array",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "<unknown type>"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("<err: %d is not a type>", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) IsSigned() bool   { return t >= I8Type && t <= I64Type }
func (t Type) IsUnsigned() bool { return t >= U8Type && t <= U64Type }
func (t Type) IsInt() bool      { return t >= I8Type && t <= U64Type }
func (t Type) IsFloat() bool    { return t == F32Type || t == F64Type }
func (t Type) IsNumber() bool   { return t >= I8Type && t <= F64Type }

// Bits returns the width of a numeric type, 0 otherwise.
func (t Type) Bits() int {
	switch t {
	case I8Type, U8Type:
		return 8
	case I16Type, U16Type:
		return 16
	case I32Type, U32Type, F32Type:
		return 32
	case I64Type, U64Type, F64Type:
		return 64
	}
	return 0
}

var suffixes = map[string]Type{
	"i8":  I8Type,
	"i16": I16Type,
	"i32": I32Type,
	"i64": I64Type,
	"u8":  U8Type,
	"u16": U16Type,
	"u32": U32Type,
	"u64": U64Type,
	"f32": F32Type,
	"f64": F64Type,
}

// Suffix returns the width tag of a numeric type ("i8", "f32", ...), or
// "" for other types.
func (t Type) Suffix() string {
	if !t.IsNumber() {
		return ""
	}
	return fmt.Sprintf("%c%d", "iiiiuuuuff"[t], t.Bits())
}

// SuffixType looks up a numeric width tag.
func SuffixType(s string) (Type, bool) {
	t, ok := suffixes[s]
	return t, ok
}

// IntRange returns the inclusive range of a signed type.
func IntRange(t Type) (lo, hi int64) {
	switch t {
	case I8Type:
		return math.MinInt8, math.MaxInt8
	case I16Type:
		return math.MinInt16, math.MaxInt16
	case I32Type:
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}

// UintMax returns the maximum of an unsigned type.
func UintMax(t Type) uint64 {
	switch t {
	case U8Type:
		return math.MaxUint8
	case U16Type:
		return math.MaxUint16
	case U32Type:
		return math.MaxUint32
	}
	return math.MaxUint64
}
