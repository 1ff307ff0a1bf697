package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
)

func TestScalar(t *testing.T) {
	bounded, err := ir.FromBoundedString("abc", 8)
	if err != nil {
		t.Fatal(err)
	}
	f32, err := ir.FromFloat(0.5, ir.F32Type)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		v    *ir.Value
		want string
	}{
		{ir.FromI8(-5), "-5i8"},
		{ir.FromI16(300), "300i16"},
		{ir.FromI32(-70000), "-70000i32"},
		{ir.FromI64(math.MinInt64), "-9223372036854775808"},
		{ir.FromU8(255), "255u8"},
		{ir.FromU16(1), "1u16"},
		{ir.FromU32(4294967295), "4294967295u32"},
		{ir.FromU64(7), "7u64"},
		{ir.FromU64(math.MaxUint64), "18446744073709551615"},
		{ir.FromF64(3), "3.0"},
		{ir.FromF64(1.25), "1.25"},
		{ir.FromF64(1e21), "1e+21"},
		{ir.FromF64(math.Copysign(0, -1)), "-0.0"},
		{ir.FromF64(math.Inf(1)), "inf"},
		{ir.FromF64(math.Inf(-1)), "-inf"},
		{ir.FromF64(math.NaN()), "nan"},
		{f32, "0.5f32"},
		{ir.FromF32(float32(math.Inf(-1))), "-inff32"},
		{ir.FromString("a\"b\n"), `"a\"b\n"`},
		{bounded, `"abc"s8`},
		{ir.FromBool(false), "false"},
		{ir.Null(), "null"},
		{ir.NewObject(), "{...}"},
		{ir.NewArray(), "[...]"},
	}
	for _, tt := range tests {
		if got := Scalar(tt.v); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	for k, want := range map[string]string{
		"name":  "name",
		"_a-1":  "_a-1",
		"1a":    `"1a"`,
		"a b":   `"a b"`,
		"":      `""`,
		"true":  `"true"`,
		"null":  `"null"`,
		"inf":   `"inf"`,
		"é":     `"é"`,
		"x\"y":  `"x\"y"`,
		"-dash": `"-dash"`,
	} {
		if got := Key(k); got != want {
			t.Errorf("Key(%q) = %s, want %s", k, got, want)
		}
	}
}

func sample(t *testing.T) *ir.Value {
	t.Helper()
	list, err := ir.FromSlice([]*ir.Value{ir.FromI64(1), ir.FromI64(2)})
	if err != nil {
		t.Fatal(err)
	}
	v, err := ir.FromKeyVals([]ir.KeyVal{
		{Key: "id", Val: ir.FromU32(7)},
		{Key: "list", Val: list},
		{Key: "empty", Val: ir.NewArray()},
		{Key: "the name", Val: ir.FromString("x")},
	})
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestCompact(t *testing.T) {
	want := `{"id":7u32,"list":[1,2],"empty":[],"the name":"x"}`
	if got := Compact(sample(t)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPretty(t *testing.T) {
	v := sample(t)
	want := `{
    id: 7u32,
    list: [
        1,
        2
    ],
    empty: [],
    "the name": "x"
}
`
	if got := Pretty(v, config.Source().WithIndent(4)); got != want {
		t.Errorf("got\n%s", got)
	}
	flat := "{\nid: 7u32,\nlist: [\n1,\n2\n],\nempty: [],\n\"the name\": \"x\"\n}\n"
	if got := Pretty(v, config.Source().WithIndent(0)); got != flat {
		t.Errorf("got\n%s", got)
	}
	if got := Pretty(v, config.IO()); got != Compact(v) {
		t.Errorf("mini config produced %s", got)
	}
}

func TestComments(t *testing.T) {
	v := sample(t)
	c := ir.NewComments()
	c.AddLeading("", "top")
	c.AddLeading("list[1]", "second")
	c.AddTrailing("empty", "nothing yet")
	c.AddFooter("")

	want := `# top
{
  id: 7u32,
  list: [
    1,
    # second
    2
  ],
  empty: [
    # nothing yet
  ],
  "the name": "x"
}
#
`
	if got := Pretty(v, config.Source(), EncodeComments(c)); got != want {
		t.Errorf("got\n%s", got)
	}
	if got := Pretty(v, config.Source().WithStripComments(true), EncodeComments(c)); strings.Contains(got, "#") {
		t.Errorf("stripped output has comments:\n%s", got)
	}
	if got := MustString(v, EncodeComments(c)); strings.Contains(got, "#") {
		t.Errorf("compact output has comments: %s", got)
	}
}

func TestColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.U32Type, Attr: ValueColor}:    func(s string, _ ...any) string { return "(" + s + ")" },
		},
	}
	v, _ := ir.FromKeyVals([]ir.KeyVal{{Key: "id", Val: ir.FromU32(7)}})
	got := Pretty(v, config.Source(), EncodeColors(colors))
	if got != "{\n  <id>: (7u32)\n}\n" {
		t.Errorf("got %q", got)
	}
	if got := MustString(v, EncodeColors(colors)); got != `{"id":7u32}` {
		t.Errorf("compact output colored: %q", got)
	}
	if NewColors().Get(ir.StrType, ValueColor) == nil {
		t.Error("no string color")
	}
}

func TestEncodeNil(t *testing.T) {
	err := Encode(nil, &bytes.Buffer{})
	if !errors.Is(err, diag.NullArgument) {
		t.Errorf("got %v", err)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	for n := range 4 {
		if err := Encode(sample(t), &failWriter{n: n}); err == nil {
			t.Errorf("write %d: no error", n)
		}
	}
}
