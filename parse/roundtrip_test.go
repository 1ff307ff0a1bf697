package parse

import (
	"testing"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
)

var roundTripDocs = []string{
	`{"a":5i8,"list":[1,2,3],"name":"x"}`,
	`null`,
	`[]`,
	`{}`,
	`[{},[],[[]]]`,
	`{a:-128i8,b:32767i16,c:-2147483648i32,d:-9223372036854775808}`,
	`{a:255u8,b:65535u16,c:4294967295u32,d:18446744073709551615,e:7u64}`,
	`[1.5,1.5f32,-0.0,1e+21,1e-07,0.1f32,inf,-inff32,nan,nanf32]`,
	`{"x y":"a\"b\\c\nd","true":true,"":false}`,
	`{s:"héllo"s5,t:"é"s1,u:"😀"}`,
	`{deep:{deeper:{deepest:[null,{k:"v"s9}]}}}`,
}

func TestCompactRoundTrip(t *testing.T) {
	for _, in := range roundTripDocs {
		t.Run(in, func(t *testing.T) {
			v, err := ParseString(in)
			if err != nil {
				t.Fatal(err)
			}
			out := encode.Compact(v)
			back, err := ParseString(out)
			if err != nil {
				t.Fatalf("reparse of %s: %v", out, err)
			}
			if !ir.Equal(v, back) {
				t.Errorf("round trip changed the value: %s", out)
			}
			if again := encode.Compact(back); again != out {
				t.Errorf("not idempotent:\n%s\n%s", out, again)
			}
		})
	}
}

func TestCompactByteIdentical(t *testing.T) {
	// inputs already in canonical compact form
	for _, in := range []string{
		`{"a":5i8,"list":[1,2,3],"name":"x"}`,
		`[1.5,0.5f32,-0.0,1e+21,inf,-inff32,nan]`,
		`{"a":255u8,"d":18446744073709551615,"e":7u64}`,
		`{"true":"t"s4,"x y":null,"_k-1":[]}`,
	} {
		v, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if out := encode.Compact(v); out != in {
			t.Errorf("got %s, want %s", out, in)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	const in = `{"a":5i8,"list":[1,2,3],"name":"x"}`
	v, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := v.Get("a")
	if x, _ := a.AsI8(); a.Type() != ir.I8Type || x != 5 {
		t.Errorf("a = %v %v", a.Type(), x)
	}
	list, _ := v.Get("list")
	for i, e := range list.Elems() {
		if x, _ := e.AsI64(); e.Type() != ir.I64Type || x != int64(i+1) {
			t.Errorf("list[%d] = %v %v", i, e.Type(), x)
		}
	}
	compact := encode.Compact(v)
	if compact != in {
		t.Errorf("compact %s", compact)
	}
	back, err := ParseString(compact)
	if err != nil {
		t.Fatal(err)
	}
	if encode.Compact(back) != compact {
		t.Error("re-encode differs")
	}
	want := "{\n  a: 5i8,\n  list: [\n    1,\n    2,\n    3\n  ],\n  name: \"x\"\n}\n"
	if got := encode.Pretty(v, config.Source()); got != want {
		t.Errorf("pretty\n%s", got)
	}
}

func TestPrettyRoundTrip(t *testing.T) {
	for _, indent := range []int{0, 1, 2, 4} {
		cfg := config.Source().WithIndent(indent)
		for _, in := range roundTripDocs {
			v, err := ParseString(in)
			if err != nil {
				t.Fatal(err)
			}
			out := encode.Pretty(v, cfg)
			back, err := ParseString(out)
			if err != nil {
				t.Fatalf("indent %d: reparse of\n%s: %v", indent, out, err)
			}
			if !ir.Equal(v, back) {
				t.Errorf("indent %d: round trip changed the value:\n%s", indent, out)
			}
			if again := encode.Pretty(back, cfg); again != out {
				t.Errorf("indent %d: not idempotent:\n%s\n%s", indent, out, again)
			}
		}
	}
}

func TestPrettyCommentRoundTrip(t *testing.T) {
	in := `# head
{
  # about a
  a: 1,
  list: [
    # first
    1,
    2
    # end of list
  ],
  empty: {
    # nothing here
  }
  # end of object
}
# foot
`
	c := ir.NewComments()
	v, err := ParseString(in, ParseComments(c))
	if err != nil {
		t.Fatal(err)
	}
	out := encode.Pretty(v, config.Source(), encode.EncodeComments(c))
	if out != in {
		t.Errorf("got\n%s\nwant\n%s", out, in)
	}

	stripped := encode.Pretty(v, config.Source().WithStripComments(true), encode.EncodeComments(c))
	want := `{
  a: 1,
  list: [
    1,
    2
  ],
  empty: {}
}
`
	if stripped != want {
		t.Errorf("got\n%s\nwant\n%s", stripped, want)
	}

	if compact := encode.Compact(v); compact != `{"a":1,"list":[1,2],"empty":{}}` {
		t.Errorf("compact output carries comments: %s", compact)
	}
}
