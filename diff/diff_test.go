package diff

import (
	"strings"
	"testing"

	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDiff(t *testing.T) {
	a := mustParse(t, `{port:80u16,name:"hello",gone:1,list:[1,2,3],s:"x"s4,kind:{a:1}}`)
	b := mustParse(t, `{name:"hello world",port:80,list:[1,5],s:"x"s8,kind:[1],new:true}`)
	got := String(Diff(a, b))
	want := strings.Join([]string{
		`! port: 80u16 -> 80`,
		`~ name: "hello{+ world+}"`,
		`- gone: 1`,
		`~ list[1]: 2 -> 5`,
		`- list[2]: 3`,
		`! s: "x"s4 -> "x"s8`,
		`! kind: {"a":1} -> [1]`,
		`+ new: true`,
	}, "\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNoDiff(t *testing.T) {
	a := mustParse(t, `{a:1,b:[nan,"x"]}`)
	b := mustParse(t, `{b:[nan,"x"],a:1}`)
	if d := Diff(a, b); len(d) != 0 {
		t.Errorf("unexpected entries:\n%s", String(d))
	}
}

func TestRootAndDeletion(t *testing.T) {
	got := String(Diff(mustParse(t, `"abc def"`), mustParse(t, `"abc"`)))
	if got != "~ .: \"abc[- def-]\"\n" {
		t.Errorf("got %q", got)
	}
	got = String(Diff(mustParse(t, `[]`), mustParse(t, `["a\nb"]`)))
	if got != "+ [0]: \"a\\nb\"\n" {
		t.Errorf("got %q", got)
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{Add: "add", Remove: "remove", Change: "change", Retype: "retype"} {
		if op.String() != want {
			t.Errorf("%d: %s", op, op)
		}
	}
}
