package convert

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	require.NoError(t, err)
	return v
}

func TestToAny(t *testing.T) {
	v := mustParse(t, `{a:5i8,b:[1u16,2.5f32,"x"s3],c:null,d:true}`)
	want := map[string]any{
		"a": int64(5),
		"b": []any{uint64(1), float64(2.5), "x"},
		"c": nil,
		"d": true,
	}
	if diff := cmp.Diff(want, ToAny(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"z":     int8(-1),
		"a":     []any{1, uint(math.MaxUint64), float32(0.5), json.Number("7")},
		"m":     "s",
		"empty": map[string]any{},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,18446744073709551615,0.5f32,7],"empty":{},"m":"s","z":-1i8}`, encode.Compact(v))

	orig := mustParse(t, `{k:"v"s4}`)
	v, err = FromAny(orig)
	require.NoError(t, err)
	assert.True(t, ir.Equal(orig, v))
	assert.Nil(t, v.Parent())

	_, err = FromAny(map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, diag.TypeMismatch)
	assert.Contains(t, err.Error(), "ch")
}

func TestJSON(t *testing.T) {
	v := mustParse(t, `{z:1u8,"a b":[1.0,-2,"q\""],n:null,o:{}}`)
	d, err := ToJSON(v, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a b":[1.0,-2,"q\""],"n":null,"o":{}}`, string(d))

	d, err = ToJSON(v, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a b\": [\n    1.0,\n    -2,\n    \"q\\\"\"\n  ],\n  \"n\": null,\n  \"o\": {}\n}\n", string(d))

	back, err := FromJSON(d)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a b":[1.0,-2,"q\""],"n":null,"o":{}}`, encode.Compact(back))
}

func TestFromJSONWidths(t *testing.T) {
	v, err := FromJSON([]byte(`[1, -1, 9223372036854775808, 1.5, 1e2]`))
	require.NoError(t, err)
	var types []ir.Type
	for _, e := range v.Elems() {
		types = append(types, e.Type())
	}
	assert.Equal(t, []ir.Type{ir.I64Type, ir.I64Type, ir.U64Type, ir.F64Type, ir.F64Type}, types)
}

func TestJSONErrors(t *testing.T) {
	_, err := ToJSON(ir.FromF64(math.Inf(1)), 0)
	assert.ErrorIs(t, err, diag.TypeMismatch)

	_, err = FromJSON([]byte(`{"a":1,"a":2}`))
	assert.ErrorIs(t, err, diag.DuplicateKey)

	_, err = FromJSON([]byte(`{"a":`))
	assert.ErrorIs(t, err, diag.UnexpectedEof)

	_, err = FromJSON([]byte(`1 2`))
	assert.ErrorIs(t, err, diag.InvalidSyntax)

	_, err = FromJSON([]byte(`{"a" 1}`))
	assert.ErrorIs(t, err, diag.InvalidSyntax)
}

func TestYAML(t *testing.T) {
	v := mustParse(t, `{name:"x",list:[1,2],nested:{b:true,a:null}}`)
	d, err := ToYAML(v)
	require.NoError(t, err)

	back, err := FromYAML(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "list", "nested"}, back.Keys())
	nested, _ := back.Get("nested")
	assert.Equal(t, []string{"b", "a"}, nested.Keys())
	assert.Equal(t, encode.Compact(v), encode.Compact(back))

	_, err = FromYAML([]byte("a: [1, 2"))
	assert.ErrorIs(t, err, diag.InvalidSyntax)
}
