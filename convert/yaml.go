package convert

import (
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/goccy/go-yaml"
)

// toOrdered is ToAny with objects as yaml.MapSlice so that YAML output
// keeps key order.
func toOrdered(v *ir.Value) any {
	switch v.Type() {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, v.NumFields())
		for k, child := range v.Fields() {
			res = append(res, yaml.MapItem{Key: k, Value: toOrdered(child)})
		}
		return res
	case ir.ArrayType:
		res := make([]any, 0, v.Len())
		for _, elt := range v.Elems() {
			res = append(res, toOrdered(elt))
		}
		return res
	}
	return ToAny(v)
}

// ToYAML renders v as a YAML document in key order.
func ToYAML(v *ir.Value) ([]byte, error) {
	if v == nil {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "convert of nil value")
	}
	d, err := yaml.Marshal(toOrdered(v))
	if err != nil {
		return nil, diag.Wrap(diag.TypeMismatch, err, "YAML")
	}
	return d, nil
}

// FromYAML reads one YAML document, keeping mapping order. Widths follow
// FromAny.
func FromYAML(d []byte) (*ir.Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return nil, diag.Wrap(diag.InvalidSyntax, err, "YAML")
	}
	return FromAny(x)
}
