package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The JSON form of a Value spells out every type tag so fixtures and
// debug dumps keep widths and bounds. Floats are strings so that NaN and
// the infinities survive.

type irField struct {
	Key   string `json:"key"`
	Value *Value `json:"value"`
}

type irBase struct {
	Type   Type      `json:"type"`
	Int    *int64    `json:"int,omitempty"`
	Uint   *uint64   `json:"uint,omitempty"`
	Float  string    `json:"float,omitempty"`
	String *string   `json:"string,omitempty"`
	Bound  int       `json:"bound,omitempty"`
	Bool   *bool     `json:"bool,omitempty"`
	Fields []irField `json:"fields,omitempty"`
	Values []*Value  `json:"values,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	base := &irBase{Type: v.typ}
	switch {
	case v.typ.IsSigned():
		base.Int = &v.i
	case v.typ.IsUnsigned():
		base.Uint = &v.u
	case v.typ.IsFloat():
		base.Float = strconv.FormatFloat(v.f, 'g', -1, v.typ.Bits())
	case v.typ == StrType:
		base.String = &v.s
		base.Bound = v.max
	case v.typ == BoolType:
		base.Bool = &v.b
	case v.typ == ObjectType:
		base.Fields = make([]irField, len(v.fields))
		for i, k := range v.fields {
			base.Fields[i] = irField{Key: k, Value: v.values[i]}
		}
	case v.typ == ArrayType:
		base.Values = v.values
	}
	return json.Marshal(base)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	var (
		res *Value
		err error
	)
	switch t := tmp.Type; {
	case t.IsSigned():
		if tmp.Int == nil {
			return fmt.Errorf("%s without int", t)
		}
		res, err = FromInt(*tmp.Int, t)
	case t.IsUnsigned():
		if tmp.Uint == nil {
			return fmt.Errorf("%s without uint", t)
		}
		res, err = FromUint(*tmp.Uint, t)
	case t.IsFloat():
		var f float64
		f, err = strconv.ParseFloat(tmp.Float, t.Bits())
		if err == nil {
			res, err = FromFloat(f, t)
		}
	case t == StrType:
		if tmp.String == nil {
			return fmt.Errorf("%s without string", t)
		}
		res, err = FromBoundedString(*tmp.String, tmp.Bound)
	case t == BoolType:
		if tmp.Bool == nil {
			return fmt.Errorf("%s without bool", t)
		}
		res = FromBool(*tmp.Bool)
	case t == NullType:
		res = Null()
	case t == ObjectType:
		res = NewObject()
		for _, f := range tmp.Fields {
			if err = res.Insert(f.Key, f.Value); err != nil {
				break
			}
		}
	case t == ArrayType:
		res = NewArray()
		for _, e := range tmp.Values {
			if err = res.Push(e); err != nil {
				break
			}
		}
	default:
		return fmt.Errorf("unknown type %d", int(t))
	}
	if err != nil {
		return err
	}
	*v = *res
	// children were adopted by res; point them at v.
	for _, child := range v.values {
		child.parent = v
	}
	return nil
}
