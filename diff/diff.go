package diff

import (
	"strings"

	"github.com/gbln-format/go-gbln/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a Change.
type Op int

const (
	Add Op = iota
	Remove
	// Change replaces a value by another of the same type.
	Change
	// Retype replaces a value by one of another type, width or bound.
	Retype
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Change:
		return "change"
	case Retype:
		return "retype"
	}
	return "<bad op>"
}

// Entry is one difference between two documents.
type Entry struct {
	Path string
	Op   Op
	// From is nil for Add, To is nil for Remove.
	From, To *ir.Value
	// Diffs holds the text edits of a string Change.
	Diffs []diffpatch.Diff
}

// Diff returns the differences that turn a into b, in document order.
// Fields are matched by key and elements by index; a field that only
// moved is not a difference.
func Diff(a, b *ir.Value) []Entry {
	var res []Entry
	walk(&res, "", a, b)
	return res
}

func walk(res *[]Entry, path string, a, b *ir.Value) {
	if a.Type() != b.Type() {
		*res = append(*res, Entry{Path: path, Op: Retype, From: a, To: b})
		return
	}
	switch a.Type() {
	case ir.ObjectType:
		for k, av := range a.Fields() {
			p := ir.FieldPath(path, k)
			if bv, ok := b.Get(k); ok {
				walk(res, p, av, bv)
			} else {
				*res = append(*res, Entry{Path: p, Op: Remove, From: av})
			}
		}
		for k, bv := range b.Fields() {
			if _, ok := a.Get(k); !ok {
				*res = append(*res, Entry{Path: ir.FieldPath(path, k), Op: Add, To: bv})
			}
		}
	case ir.ArrayType:
		for i, av := range a.Elems() {
			p := ir.IndexPath(path, i)
			if bv, ok := b.Index(i); ok {
				walk(res, p, av, bv)
			} else {
				*res = append(*res, Entry{Path: p, Op: Remove, From: av})
			}
		}
		for i := a.Len(); i < b.Len(); i++ {
			bv, _ := b.Index(i)
			*res = append(*res, Entry{Path: ir.IndexPath(path, i), Op: Add, To: bv})
		}
	case ir.StrType:
		as, _ := a.AsString()
		bs, _ := b.AsString()
		if as != bs {
			*res = append(*res, Entry{Path: path, Op: Change, From: a, To: b, Diffs: diffString(as, bs)})
			return
		}
		if ab, _ := a.StrBound(); ab != boundOf(b) {
			*res = append(*res, Entry{Path: path, Op: Retype, From: a, To: b})
		}
	default:
		if !ir.Equal(a, b) {
			*res = append(*res, Entry{Path: path, Op: Change, From: a, To: b})
		}
	}
}

func boundOf(v *ir.Value) int {
	n, _ := v.StrBound()
	return n
}

func diffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	multiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, multiLine)
	return dmp.DiffCleanupSemantic(diffs)
}
