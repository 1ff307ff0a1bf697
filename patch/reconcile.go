package patch

import (
	"math"

	"github.com/gbln-format/go-gbln/ir"
)

// Reconcile returns a copy of res in which values found at a path that
// also exists in orig take the width or bound of the original when they
// fit it. Numbers that do not fit, and paths new to res, keep the default
// widths. Array elements are matched by index. An error means a field
// or element could not be attached to the copy.
//
// Object fields present in both come in the order of orig, followed by
// the fields new to res.
func Reconcile(orig, res *ir.Value) (*ir.Value, error) {
	if orig == nil {
		return res.Clone(), nil
	}
	switch res.Type() {
	case ir.ObjectType:
		out := ir.NewObject()
		for k, o := range orig.Fields() {
			child, ok := res.Get(k)
			if !ok {
				continue
			}
			v, err := Reconcile(o, child)
			if err != nil {
				return nil, err
			}
			if err := out.Insert(k, v); err != nil {
				return nil, err
			}
		}
		for k, child := range res.Fields() {
			if _, ok := orig.Get(k); ok {
				continue
			}
			if err := out.Insert(k, child.Clone()); err != nil {
				return nil, err
			}
		}
		return out, nil
	case ir.ArrayType:
		out := ir.NewArray()
		for i, elt := range res.Elems() {
			o, _ := orig.Index(i)
			v, err := Reconcile(o, elt)
			if err != nil {
				return nil, err
			}
			if err := out.Push(v); err != nil {
				return nil, err
			}
		}
		return out, nil
	case ir.StrType:
		return reconcileStr(orig, res), nil
	}
	if res.Type().IsNumber() && orig.Type().IsNumber() {
		if v := narrow(res, orig.Type()); v != nil {
			return v, nil
		}
	}
	return res.Clone(), nil
}

func reconcileStr(orig, res *ir.Value) *ir.Value {
	s, _ := res.AsString()
	if bound, ok := orig.StrBound(); ok && bound > 0 {
		if v, err := ir.FromBoundedString(s, bound); err == nil {
			return v
		}
	}
	return ir.FromString(s)
}

// narrow returns v as a number of type t, or nil if its value does not
// fit t exactly.
func narrow(v *ir.Value, t ir.Type) *ir.Value {
	if v.Type() == t {
		return nil
	}
	if t.IsFloat() {
		x, ok := asFloat(v)
		if !ok {
			return nil
		}
		if t == ir.F32Type && float64(float32(x)) != x && !math.IsNaN(x) {
			return nil
		}
		res, err := ir.FromFloat(x, t)
		if err != nil {
			return nil
		}
		return res
	}
	if i, ok := v.AsInt(); ok {
		var (
			res *ir.Value
			err error
		)
		if t.IsSigned() {
			res, err = ir.FromInt(i, t)
		} else if i >= 0 {
			res, err = ir.FromUint(uint64(i), t)
		} else {
			return nil
		}
		if err != nil {
			return nil
		}
		return res
	}
	if u, ok := v.AsUint(); ok && t.IsUnsigned() {
		res, err := ir.FromUint(u, t)
		if err != nil {
			return nil
		}
		return res
	}
	return nil
}

// asFloat returns v as a float64 if the conversion is exact.
func asFloat(v *ir.Value) (float64, bool) {
	const exact = 1 << 53
	if x, ok := v.AsFloat(); ok {
		return x, true
	}
	if i, ok := v.AsInt(); ok {
		return float64(i), i > -exact && i < exact
	}
	if u, ok := v.AsUint(); ok {
		return float64(u), u < exact
	}
	return 0, false
}
