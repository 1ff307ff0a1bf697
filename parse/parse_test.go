package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/google/go-cmp/cmp"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		want string
	}{
		{`5`, ir.I64Type, "5"},
		{`-5`, ir.I64Type, "-5"},
		{`+5`, ir.I64Type, "5"},
		{`007`, ir.I64Type, "7"},
		{`9223372036854775808`, ir.U64Type, "9223372036854775808"},
		{`5i8`, ir.I8Type, "5"},
		{`127i8`, ir.I8Type, "127"},
		{`-128i8`, ir.I8Type, "-128"},
		{`65535u16`, ir.U16Type, "65535"},
		{`-2147483648i32`, ir.I32Type, "-2147483648"},
		{`18446744073709551615u64`, ir.U64Type, "18446744073709551615"},
		{`1.5`, ir.F64Type, "1.5"},
		{`1e3`, ir.F64Type, "1000"},
		{`1.5f32`, ir.F32Type, "1.5"},
		{`3f64`, ir.F64Type, "3"},
		{`2f32`, ir.F32Type, "2"},
		{`inf`, ir.F64Type, "+Inf"},
		{`-inff32`, ir.F32Type, "-Inf"},
		{`nan`, ir.F64Type, "NaN"},
		{`"x"`, ir.StrType, "x"},
		{`true`, ir.BoolType, "true"},
		{`null`, ir.NullType, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if v.Type() != tt.typ {
				t.Fatalf("type %s, want %s", v.Type(), tt.typ)
			}
			if got := leafString(v); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func leafString(v *ir.Value) string {
	if x, ok := v.AsInt(); ok {
		return strconv.FormatInt(x, 10)
	}
	if x, ok := v.AsUint(); ok {
		return strconv.FormatUint(x, 10)
	}
	if x, ok := v.AsFloat(); ok {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	if b, ok := v.AsBool(); ok {
		if b {
			return "true"
		}
		return "false"
	}
	return ""
}

func TestParseStructure(t *testing.T) {
	v, err := ParseString(`{a: 5i8, "b c": [1, {x: null}], true: "k", s: "hey"s3}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b c", "true", "s"}, v.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	list, _ := v.Get("b c")
	if list.Len() != 2 {
		t.Fatalf("len %d", list.Len())
	}
	inner, _ := list.Index(1)
	x, ok := inner.Get("x")
	if !ok || !x.IsNull() {
		t.Error("missing x")
	}
	if x.Path() != `"b c"[1].x` {
		t.Errorf("path %q", x.Path())
	}
	s, _ := v.Get("s")
	if n, _ := s.StrBound(); n != 3 {
		t.Errorf("bound %d", n)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind diag.Kind
		pos  diag.Pos
	}{
		{`200i8`, diag.IntOutOfRange, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`-1u8`, diag.IntOutOfRange, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`256u8`, diag.IntOutOfRange, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`99999999999999999999999`, diag.IntOutOfRange, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`1.5i32`, diag.TypeMismatch, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`5x9`, diag.InvalidTypeHint, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`5s4`, diag.TypeMismatch, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`"a"i8`, diag.TypeMismatch, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`"a"s0`, diag.InvalidTypeHint, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`"abcdef"s5`, diag.StringTooLong, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`1e999`, diag.InvalidSyntax, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`1e39f32`, diag.InvalidSyntax, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`{a: 1, a: 2}`, diag.DuplicateKey, diag.Pos{Offset: 7, Line: 1, Col: 8}},
		{`{a: 1,}`, diag.InvalidSyntax, diag.Pos{Offset: 5, Line: 1, Col: 6}},
		{`[1, 2,]`, diag.InvalidSyntax, diag.Pos{Offset: 5, Line: 1, Col: 6}},
		{`{a: 1} 2`, diag.InvalidSyntax, diag.Pos{Offset: 7, Line: 1, Col: 8}},
		{`{a: 1`, diag.UnexpectedEof, diag.Pos{Offset: 5, Line: 1, Col: 6}},
		{`[1`, diag.UnexpectedEof, diag.Pos{Offset: 2, Line: 1, Col: 3}},
		{`{a 1}`, diag.UnexpectedToken, diag.Pos{Offset: 3, Line: 1, Col: 4}},
		{`{a: }`, diag.UnexpectedToken, diag.Pos{Offset: 4, Line: 1, Col: 5}},
		{`[1 2]`, diag.UnexpectedToken, diag.Pos{Offset: 3, Line: 1, Col: 4}},
		{`{5: 1}`, diag.UnexpectedToken, diag.Pos{Offset: 1, Line: 1, Col: 2}},
		{`[abc]`, diag.InvalidSyntax, diag.Pos{Offset: 1, Line: 1, Col: 2}},
		{``, diag.UnexpectedEof, diag.Pos{Offset: 0, Line: 1, Col: 1}},
		{`# only a comment`, diag.UnexpectedEof, diag.Pos{Offset: 16, Line: 1, Col: 17}},
		{`{a: 'x'}`, diag.UnexpectedChar, diag.Pos{Offset: 4, Line: 1, Col: 5}},
		{`["abc`, diag.UnterminatedString, diag.Pos{Offset: 1, Line: 1, Col: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseString(tt.in)
			if v != nil {
				t.Error("partial tree returned")
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("got %v, want %s", err, tt.kind)
			}
			d, ok := diag.As(err)
			if !ok {
				t.Fatal("not a diagnostic")
			}
			if d.Pos != tt.pos {
				t.Errorf("pos %+v, want %+v", d.Pos, tt.pos)
			}
		})
	}
}

func TestSuggestions(t *testing.T) {
	_, err := ParseString(`200i8`)
	d, _ := diag.As(err)
	if !strings.Contains(d.Suggestion, "i16") {
		t.Errorf("suggestion %q", d.Suggestion)
	}
	_, err = ParseString(`70000i8`)
	d, _ = diag.As(err)
	if !strings.Contains(d.Suggestion, "i32") {
		t.Errorf("suggestion %q", d.Suggestion)
	}
	_, err = ParseString(`9223372036854775808i64`)
	d, _ = diag.As(err)
	if !strings.Contains(d.Suggestion, "u64") {
		t.Errorf("suggestion %q", d.Suggestion)
	}
	_, err = ParseString(`-9223372036854775809i64`)
	d, _ = diag.As(err)
	if !strings.Contains(d.Suggestion, "f64") {
		t.Errorf("suggestion %q", d.Suggestion)
	}
	_, err = ParseString(`[1,]`)
	d, _ = diag.As(err)
	if d.Suggestion != "remove the trailing comma" {
		t.Errorf("suggestion %q", d.Suggestion)
	}
}

func TestLimits(t *testing.T) {
	deep := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	if _, err := ParseString(deep, MaxDepth(10)); err != nil {
		t.Errorf("depth 10: %v", err)
	}
	if _, err := ParseString(deep, MaxDepth(9)); !errors.Is(err, diag.InvalidSyntax) {
		t.Errorf("depth 9: %v", err)
	}
	if _, err := ParseString(strings.Repeat("[", 600) + strings.Repeat("]", 600)); !errors.Is(err, diag.InvalidSyntax) {
		t.Errorf("default depth: %v", err)
	}

	v, err := ParseString(`"abcd"`, MaxStringLen(4))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := v.StrBound(); n != 0 {
		t.Error("limit leaked into the bound")
	}
	if _, err := ParseString(`"abcde"`, MaxStringLen(4)); !errors.Is(err, diag.StringTooLong) {
		t.Errorf("MaxStringLen: %v", err)
	}
	if _, err := ParseString(`"abcde"s8`, MaxStringLen(4)); err != nil {
		t.Errorf("declared bound wins: %v", err)
	}
}

func TestPositionsOption(t *testing.T) {
	pos := map[*ir.Value]diag.Pos{}
	v, err := ParseString("{\n  a: [1, 2]\n}", ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := v.Get("a")
	two, _ := a.Index(1)
	if got := pos[v]; got.Line != 1 || got.Col != 1 {
		t.Errorf("root %v", got)
	}
	if got := pos[a]; got.Line != 2 || got.Col != 6 {
		t.Errorf("a %v", got)
	}
	if got := pos[two]; got.Line != 2 || got.Col != 10 {
		t.Errorf("a[1] %v", got)
	}
}

func TestCommentsOption(t *testing.T) {
	in := `# head
{
  # about a
  a: 1,
  list: [
    # first
    1,
    2
    # end of list
  ]
  # end of object
}
# foot
`
	c := ir.NewComments()
	if _, err := ParseString(in, ParseComments(c)); err != nil {
		t.Fatal(err)
	}
	want := &ir.Comments{
		Leading: map[string][]string{
			"":        {"head"},
			"a":       {"about a"},
			"list[0]": {"first"},
		},
		Trailing: map[string][]string{
			"list": {"end of list"},
			"":     {"end of object"},
		},
		Footer: []string{"foot"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
}

func TestSpecialFloatKeys(t *testing.T) {
	v, err := ParseString(`{inf: 1, nan: 2, null: 3}`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"inf", "nan", "null"}, v.Keys()); diff != "" {
		t.Error(diff)
	}
}

func TestNegativeZero(t *testing.T) {
	v, err := ParseString(`-0.0`)
	if err != nil {
		t.Fatal(err)
	}
	f, _ := v.AsF64()
	if !math.Signbit(f) {
		t.Error("sign lost")
	}
}
