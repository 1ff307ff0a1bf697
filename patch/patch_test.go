package patch

import (
	"testing"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	require.NoError(t, err)
	return v
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{port:80u16,name:"api"s8,tags:["a"],ratio:0.5f32}`)
	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{
			"keep width",
			`[{"op":"replace","path":"/port","value":8080}]`,
			`{"port":8080u16,"name":"api"s8,"tags":["a"],"ratio":0.5f32}`,
		},
		{
			"too wide for the old width",
			`[{"op":"replace","path":"/port","value":70000}]`,
			`{"port":70000,"name":"api"s8,"tags":["a"],"ratio":0.5f32}`,
		},
		{
			"negative into unsigned",
			`[{"op":"replace","path":"/port","value":-1}]`,
			`{"port":-1,"name":"api"s8,"tags":["a"],"ratio":0.5f32}`,
		},
		{
			"keep bound",
			`[{"op":"replace","path":"/name","value":"gateway"}]`,
			`{"port":80u16,"name":"gateway"s8,"tags":["a"],"ratio":0.5f32}`,
		},
		{
			"bound exceeded",
			`[{"op":"replace","path":"/name","value":"gateway-01"}]`,
			`{"port":80u16,"name":"gateway-01","tags":["a"],"ratio":0.5f32}`,
		},
		{
			"float width",
			`[{"op":"replace","path":"/ratio","value":0.25}]`,
			`{"port":80u16,"name":"api"s8,"tags":["a"],"ratio":0.25f32}`,
		},
		{
			"inexact float",
			`[{"op":"replace","path":"/ratio","value":0.1}]`,
			`{"port":80u16,"name":"api"s8,"tags":["a"],"ratio":0.1}`,
		},
		{
			"add and remove",
			`[{"op":"add","path":"/tags/-","value":"b"},{"op":"remove","path":"/name"},{"op":"add","path":"/new","value":{"x":1}}]`,
			`{"port":80u16,"tags":["a","b"],"ratio":0.5f32,"new":{"x":1}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(doc, []byte(tt.patch))
			require.NoError(t, err)
			assert.Equal(t, tt.want, encode.Compact(got))
		})
	}
	assert.Equal(t, `{"port":80u16,"name":"api"s8,"tags":["a"],"ratio":0.5f32}`, encode.Compact(doc))
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{a:1i8,b:{c:2u8,d:"x"},e:[1i8]}`)
	got, err := Merge(doc, []byte(`{"a":7,"b":{"d":null,"f":true},"e":[3,4]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":7i8,"b":{"c":2u8,"f":true},"e":[3i8,4]}`, encode.Compact(got))
}

func TestApplyValue(t *testing.T) {
	doc := mustParse(t, `{a:1i8}`)
	got, err := ApplyValue(doc, mustParse(t, `[{op:"add",path:"/b",value:2}]`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1i8,"b":2}`, encode.Compact(got))

	got, err = ApplyValue(doc, mustParse(t, `{a:3}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":3i8}`, encode.Compact(got))
}

func TestErrors(t *testing.T) {
	doc := mustParse(t, `{a:1}`)

	_, err := Apply(doc, []byte(`not json`))
	assert.ErrorIs(t, err, diag.InvalidSyntax)

	_, err = Apply(doc, []byte(`[{"op":"test","path":"/a","value":2}]`))
	assert.ErrorIs(t, err, diag.TypeMismatch)

	_, err = Apply(nil, []byte(`[]`))
	assert.ErrorIs(t, err, diag.NullArgument)

	_, err = Merge(mustParse(t, `{a:inf}`), []byte(`{}`))
	assert.ErrorIs(t, err, diag.TypeMismatch)
}

func TestReconcileNewPaths(t *testing.T) {
	orig := mustParse(t, `[1u8,{k:"v"s2}]`)
	res := mustParse(t, `[2,{k:"w",n:3},4]`)
	out, err := Reconcile(orig, res)
	require.NoError(t, err)
	assert.Equal(t, `[2u8,{"k":"w"s2,"n":3},4]`, encode.Compact(out))
	assert.Nil(t, out.Parent())
}

func TestReconcileKeepsEveryField(t *testing.T) {
	orig := mustParse(t, `{b:1u8,a:[1i16],gone:true}`)
	res := mustParse(t, `{a:[2,3],c:"x",b:2}`)
	out, err := Reconcile(orig, res)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, out.Keys())
	assert.Equal(t, `{"b":2u8,"a":[2i16,3],"c":"x"}`, encode.Compact(out))

	out, err = Reconcile(nil, res)
	require.NoError(t, err)
	assert.Equal(t, encode.Compact(res), encode.Compact(out))
}
