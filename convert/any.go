package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/goccy/go-yaml"
)

// ToAny returns v as plain Go data: objects become map[string]any,
// arrays []any, signed integers int64, unsigned integers uint64 and
// floats float64. Key order and widths are lost.
func ToAny(v *ir.Value) any {
	switch v.Type() {
	case ir.ObjectType:
		res := make(map[string]any, v.NumFields())
		for k, child := range v.Fields() {
			res[k] = ToAny(child)
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, v.Len())
		for _, elt := range v.Elems() {
			res = append(res, ToAny(elt))
		}
		return res
	case ir.StrType:
		s, _ := v.AsString()
		return s
	case ir.BoolType:
		b, _ := v.AsBool()
		return b
	case ir.NullType:
		return nil
	}
	return scalarAny(v)
}

func scalarAny(v *ir.Value) any {
	t := v.Type()
	switch {
	case t.IsSigned():
		x, _ := v.AsInt()
		return x
	case t.IsUnsigned():
		x, _ := v.AsUint()
		return x
	case t.IsFloat():
		x, _ := v.AsFloat()
		return x
	}
	panic("impossible production")
}

// FromAny builds a value from Go data. Sized Go numbers keep their width
// (int8 becomes I8, float32 F32); int, uint and json.Number take the
// widths the parser gives unsuffixed literals. Map keys are sorted since
// Go maps carry no order; yaml.MapSlice keeps its order.
func FromAny(x any) (*ir.Value, error) {
	switch x := x.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int8:
		return ir.FromI8(x), nil
	case int16:
		return ir.FromI16(x), nil
	case int32:
		return ir.FromI32(x), nil
	case int64:
		return ir.FromI64(x), nil
	case int:
		return ir.FromI64(int64(x)), nil
	case uint8:
		return ir.FromU8(x), nil
	case uint16:
		return ir.FromU16(x), nil
	case uint32:
		return ir.FromU32(x), nil
	case uint64:
		return defaultUint(x), nil
	case uint:
		return defaultUint(uint64(x)), nil
	case float32:
		return ir.FromF32(x), nil
	case float64:
		return ir.FromF64(x), nil
	case json.Number:
		return fromNumber(string(x))
	case []any:
		res := ir.NewArray()
		for i, elt := range x {
			v, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := res.Push(v); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := ir.NewObject()
		for _, k := range keys {
			if err := insertAny(res, k, x[k]); err != nil {
				return nil, err
			}
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			if err := insertAny(res, k, item.Value); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, diag.New(diag.TypeMismatch, diag.Pos{}, "cannot convert %T", x)
}

func insertAny(obj *ir.Value, k string, x any) error {
	v, err := FromAny(x)
	if err != nil {
		return fmt.Errorf("%s: %w", ir.FieldPath("", k), err)
	}
	return obj.Insert(k, v)
}

func defaultUint(u uint64) *ir.Value {
	if u <= math.MaxInt64 {
		return ir.FromI64(int64(u))
	}
	return ir.FromU64(u)
}

// fromNumber gives a JSON number the width the parser would give the
// same unsuffixed literal.
func fromNumber(s string) (*ir.Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromI64(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ir.FromU64(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, diag.Wrap(diag.InvalidSyntax, err, "number %s", s)
	}
	return ir.FromF64(f), nil
}
