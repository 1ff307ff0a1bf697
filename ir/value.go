package ir

import (
	"iter"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
)

// Value is a node of a GBLN document. It is a tagged union: Type selects
// which of the payload fields is meaningful. The zero Value is not valid;
// use the constructors.
//
// A Value has at most one parent. Composite values own their children,
// and ownership moves only through Insert and Push.
type Value struct {
	typ Type

	parent      *Value
	parentIndex int
	parentField string

	i   int64
	u   uint64
	f   float64
	s   string
	max int
	b   bool

	fields []string
	values []*Value
	index  map[string]int
}

func FromI8(v int8) *Value   { return &Value{typ: I8Type, i: int64(v)} }
func FromI16(v int16) *Value { return &Value{typ: I16Type, i: int64(v)} }
func FromI32(v int32) *Value { return &Value{typ: I32Type, i: int64(v)} }
func FromI64(v int64) *Value { return &Value{typ: I64Type, i: v} }

func FromU8(v uint8) *Value   { return &Value{typ: U8Type, u: uint64(v)} }
func FromU16(v uint16) *Value { return &Value{typ: U16Type, u: uint64(v)} }
func FromU32(v uint32) *Value { return &Value{typ: U32Type, u: uint64(v)} }
func FromU64(v uint64) *Value { return &Value{typ: U64Type, u: v} }

func FromF32(v float32) *Value { return &Value{typ: F32Type, f: float64(v)} }
func FromF64(v float64) *Value { return &Value{typ: F64Type, f: v} }

func FromBool(v bool) *Value { return &Value{typ: BoolType, b: v} }

func Null() *Value { return &Value{typ: NullType} }

func NewObject() *Value { return &Value{typ: ObjectType} }
func NewArray() *Value  { return &Value{typ: ArrayType} }

// FromString returns an unbounded string. Invalid UTF-8 sequences in v
// are replaced with U+FFFD.
func FromString(v string) *Value {
	return &Value{typ: StrType, s: strings.ToValidUTF8(v, string(utf8.RuneError))}
}

// FromBoundedString returns a string whose length, in code points, may
// never exceed max. A max of 0 means unbounded.
func FromBoundedString(v string, max int) (*Value, error) {
	if max < 0 {
		return nil, diag.New(diag.InvalidTypeHint, diag.Pos{}, "negative string bound %d", max)
	}
	if !utf8.ValidString(v) {
		return nil, diag.New(diag.InvalidSyntax, diag.Pos{}, "string %q is not valid UTF-8", v)
	}
	if max > 0 {
		if n := utf8.RuneCountInString(v); n > max {
			return nil, diag.New(diag.StringTooLong, diag.Pos{},
				"string of length %d exceeds bound %d", n, max).
				Suggest("use a bound of at least %d", n)
		}
	}
	return &Value{typ: StrType, s: v, max: max}, nil
}

// FromInt returns a signed integer of type t, checking its range.
func FromInt(v int64, t Type) (*Value, error) {
	if !t.IsSigned() {
		return nil, diag.New(diag.TypeMismatch, diag.Pos{}, "%s is not a signed integer type", t)
	}
	lo, hi := IntRange(t)
	if v < lo || v > hi {
		return nil, diag.New(diag.IntOutOfRange, diag.Pos{}, "%d does not fit %s", v, t.Suffix())
	}
	return &Value{typ: t, i: v}, nil
}

// FromUint returns an unsigned integer of type t, checking its range.
func FromUint(v uint64, t Type) (*Value, error) {
	if !t.IsUnsigned() {
		return nil, diag.New(diag.TypeMismatch, diag.Pos{}, "%s is not an unsigned integer type", t)
	}
	if v > UintMax(t) {
		return nil, diag.New(diag.IntOutOfRange, diag.Pos{}, "%d does not fit %s", v, t.Suffix())
	}
	return &Value{typ: t, u: v}, nil
}

// FromFloat returns a float of type t. A finite v that overflows F32 is
// rejected.
func FromFloat(v float64, t Type) (*Value, error) {
	switch t {
	case F64Type:
		return FromF64(v), nil
	case F32Type:
		f := float32(v)
		if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
			return nil, diag.New(diag.InvalidSyntax, diag.Pos{}, "%g overflows f32", v)
		}
		return FromF32(f), nil
	}
	return nil, diag.New(diag.TypeMismatch, diag.Pos{}, "%s is not a float type", t)
}

func (v *Value) Type() Type { return v.typ }

// Parent returns the container owning v, or nil for a root.
func (v *Value) Parent() *Value { return v.parent }

func (v *Value) AsI8() (int8, bool) {
	if v.typ != I8Type {
		return 0, false
	}
	return int8(v.i), true
}

func (v *Value) AsI16() (int16, bool) {
	if v.typ != I16Type {
		return 0, false
	}
	return int16(v.i), true
}

func (v *Value) AsI32() (int32, bool) {
	if v.typ != I32Type {
		return 0, false
	}
	return int32(v.i), true
}

func (v *Value) AsI64() (int64, bool) {
	if v.typ != I64Type {
		return 0, false
	}
	return v.i, true
}

func (v *Value) AsU8() (uint8, bool) {
	if v.typ != U8Type {
		return 0, false
	}
	return uint8(v.u), true
}

func (v *Value) AsU16() (uint16, bool) {
	if v.typ != U16Type {
		return 0, false
	}
	return uint16(v.u), true
}

func (v *Value) AsU32() (uint32, bool) {
	if v.typ != U32Type {
		return 0, false
	}
	return uint32(v.u), true
}

func (v *Value) AsU64() (uint64, bool) {
	if v.typ != U64Type {
		return 0, false
	}
	return v.u, true
}

func (v *Value) AsF32() (float32, bool) {
	if v.typ != F32Type {
		return 0, false
	}
	return float32(v.f), true
}

func (v *Value) AsF64() (float64, bool) {
	if v.typ != F64Type {
		return 0, false
	}
	return v.f, true
}

func (v *Value) AsString() (string, bool) {
	if v.typ != StrType {
		return "", false
	}
	return v.s, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.typ != BoolType {
		return false, false
	}
	return v.b, true
}

func (v *Value) IsNull() bool { return v.typ == NullType }

// StrBound returns the declared bound of a string, 0 if unbounded.
func (v *Value) StrBound() (int, bool) {
	if v.typ != StrType {
		return 0, false
	}
	return v.max, true
}

// AsInt returns any signed integer widened to int64.
func (v *Value) AsInt() (int64, bool) {
	if !v.typ.IsSigned() {
		return 0, false
	}
	return v.i, true
}

// AsUint returns any unsigned integer widened to uint64.
func (v *Value) AsUint() (uint64, bool) {
	if !v.typ.IsUnsigned() {
		return 0, false
	}
	return v.u, true
}

// AsFloat returns any float widened to float64.
func (v *Value) AsFloat() (float64, bool) {
	if !v.typ.IsFloat() {
		return 0, false
	}
	return v.f, true
}

// Get returns the value of field key of an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.typ != ObjectType {
		return nil, false
	}
	i, ok := v.fieldIndex(key)
	if !ok {
		return nil, false
	}
	return v.values[i], true
}

// Index returns element i of an array.
func (v *Value) Index(i int) (*Value, bool) {
	if v.typ != ArrayType || i < 0 || i >= len(v.values) {
		return nil, false
	}
	return v.values[i], true
}

// NumFields returns the number of fields of an object, 0 otherwise.
func (v *Value) NumFields() int {
	if v.typ != ObjectType {
		return 0
	}
	return len(v.fields)
}

// Len returns the length of an array, 0 otherwise.
func (v *Value) Len() int {
	if v.typ != ArrayType {
		return 0
	}
	return len(v.values)
}

// Keys returns the keys of an object in insertion order.
func (v *Value) Keys() []string {
	if v.typ != ObjectType {
		return nil
	}
	res := make([]string, len(v.fields))
	copy(res, v.fields)
	return res
}

// Fields iterates over the fields of an object in insertion order.
func (v *Value) Fields() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.typ != ObjectType {
			return
		}
		for i, k := range v.fields {
			if !yield(k, v.values[i]) {
				return
			}
		}
	}
}

// Elems iterates over the elements of an array.
func (v *Value) Elems() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.typ != ArrayType {
			return
		}
		for i, e := range v.values {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (v *Value) fieldIndex(key string) (int, bool) {
	if v.index != nil {
		i, ok := v.index[key]
		return i, ok
	}
	for i, k := range v.fields {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of v with no parent.
func (v *Value) Clone() *Value {
	res := &Value{}
	*res = *v
	res.parent = nil
	res.parentIndex = 0
	res.parentField = ""
	res.index = nil
	if v.typ.IsLeaf() {
		res.fields = nil
		res.values = nil
		return res
	}
	res.fields = append([]string(nil), v.fields...)
	res.values = make([]*Value, len(v.values))
	for i, child := range v.values {
		c := child.Clone()
		c.parent = res
		c.parentIndex = i
		if res.typ == ObjectType {
			c.parentField = res.fields[i]
		}
		res.values[i] = c
	}
	if v.index != nil {
		res.buildIndex()
	}
	return res
}

func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, child := range v.values {
			if err := child.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

func (v *Value) Root() *Value {
	res := v
	for res.parent != nil {
		res = res.parent
	}
	return res
}
