package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
)

// ToJSON renders v as JSON, keeping key order. Widths and string bounds
// are dropped. A non-finite float has no JSON form and is a TypeMismatch.
// With indent > 0 the output is indented by that many spaces per level.
func ToJSON(v *ir.Value, indent int) ([]byte, error) {
	if v == nil {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "convert of nil value")
	}
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, v, indent, 0); err != nil {
		return nil, err
	}
	if indent > 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *ir.Value, indent, depth int) error {
	nl := func(d int) {
		if indent > 0 {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", indent*d))
		}
	}
	switch v.Type() {
	case ir.ObjectType:
		buf.WriteByte('{')
		i := 0
		for k, child := range v.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			nl(depth + 1)
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if indent > 0 {
				buf.WriteByte(' ')
			}
			if err := writeJSON(buf, child, indent, depth+1); err != nil {
				return err
			}
		}
		if i > 0 {
			nl(depth)
		}
		buf.WriteByte('}')
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, elt := range v.Elems() {
			if i > 0 {
				buf.WriteByte(',')
			}
			nl(depth + 1)
			if err := writeJSON(buf, elt, indent, depth+1); err != nil {
				return err
			}
		}
		if v.Len() > 0 {
			nl(depth)
		}
		buf.WriteByte(']')
	case ir.StrType:
		s, _ := v.AsString()
		writeJSONString(buf, s)
	case ir.BoolType:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
	case ir.NullType:
		buf.WriteString("null")
	default:
		return writeJSONNumber(buf, v)
	}
	return nil
}

func writeJSONNumber(buf *bytes.Buffer, v *ir.Value) error {
	t := v.Type()
	switch {
	case t.IsSigned():
		x, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(x, 10))
	case t.IsUnsigned():
		x, _ := v.AsUint()
		buf.WriteString(strconv.FormatUint(x, 10))
	default:
		x, _ := v.AsFloat()
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return diag.New(diag.TypeMismatch, diag.Pos{}, "%s at %q has no JSON form", strconv.FormatFloat(x, 'g', -1, 64), v.Path()).
				Suggest("replace non-finite floats before converting to JSON")
		}
		s := strconv.FormatFloat(x, 'g', -1, t.Bits())
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		buf.WriteString(s)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// FromJSON reads one JSON document, keeping key order. Integers become
// I64 (or U64 past the signed range) and other numbers F64. Repeated keys
// are a DuplicateKey error.
func FromJSON(d []byte) (*ir.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, diag.New(diag.InvalidSyntax, diag.Pos{}, "trailing data after JSON value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, jsonErr(err)
	}
	switch tok := tok.(type) {
	case json.Delim:
		if tok == '[' {
			res := ir.NewArray()
			for dec.More() {
				elt, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				if err := res.Push(elt); err != nil {
					return nil, err
				}
			}
			_, err := dec.Token()
			return res, jsonErr(err)
		}
		res := ir.NewObject()
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, jsonErr(err)
			}
			k := kt.(string)
			child, err := decodeJSON(dec)
			if err != nil {
				return nil, err
			}
			if err := res.Insert(k, child); err != nil {
				return nil, err
			}
		}
		_, err := dec.Token()
		return res, jsonErr(err)
	case json.Number:
		return fromNumber(string(tok))
	default:
		return FromAny(tok)
	}
}

func jsonErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return diag.Wrap(diag.UnexpectedEof, err, "JSON input ended early")
	}
	return diag.Wrap(diag.InvalidSyntax, err, "JSON")
}
