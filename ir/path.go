package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/token"
)

// Path returns the location of v within its root.
//
// Examples:
//   - root → ""
//   - object field "a" → "a"
//   - array element 0 of the root → "[0]"
//   - nested → "a.list[2].b"
//   - keys that are not plain identifiers are quoted: `a."x y"`
func (v *Value) Path() string {
	if v.parent == nil {
		return ""
	}
	prefix := v.parent.Path()
	switch v.parent.typ {
	case ObjectType:
		return FieldPath(prefix, v.parentField)
	case ArrayType:
		return IndexPath(prefix, v.parentIndex)
	default:
		panic("parent but not in container")
	}
}

// FieldPath extends prefix with an object key.
func FieldPath(prefix, key string) string {
	if token.NeedsQuote(key) {
		key = token.Quote(key)
	}
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// IndexPath extends prefix with an array index.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// PathSegment is one step of a parsed path: a key, or an index when
// IsIndex is set.
type PathSegment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s PathSegment) String() string {
	if s.IsIndex {
		return IndexPath("", s.Index)
	}
	return FieldPath("", s.Key)
}

// ParsePath splits a path as produced by Path into segments.
func ParsePath(p string) ([]PathSegment, error) {
	var res []PathSegment
	i := 0
	for i < len(p) {
		switch {
		case p[i] == '[':
			j := strings.IndexByte(p[i:], ']')
			if j < 0 {
				return nil, pathErr(p, i, "unclosed index")
			}
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, pathErr(p, i, "bad index %q", p[i+1:i+j])
			}
			res = append(res, PathSegment{Index: n, IsIndex: true})
			i += j + 1
			continue
		case p[i] == '.':
			if i == 0 {
				return nil, pathErr(p, i, "leading dot")
			}
			i++
		case i != 0:
			return nil, pathErr(p, i, "expected '.' or '['")
		}
		if i >= len(p) {
			return nil, pathErr(p, i, "missing key")
		}
		if p[i] == '"' {
			n, key, err := token.UnquotePrefix(p[i:])
			if err != nil {
				return nil, pathErr(p, i, "%v", err)
			}
			res = append(res, PathSegment{Key: key})
			i += n
			continue
		}
		j := i
		for j < len(p) && p[j] != '.' && p[j] != '[' {
			j++
		}
		if j == i {
			return nil, pathErr(p, i, "missing key")
		}
		res = append(res, PathSegment{Key: p[i:j]})
		i = j
	}
	return res, nil
}

func pathErr(p string, off int, format string, args ...any) error {
	return diag.New(diag.InvalidSyntax, diag.Pos{}, "path %q at %d: %s", p, off, fmt.Sprintf(format, args...))
}

// GetPath returns the value at p relative to v.
func (v *Value) GetPath(p string) (*Value, error) {
	segs, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := v
	prefix := ""
	for _, seg := range segs {
		var (
			next *Value
			ok   bool
		)
		if seg.IsIndex {
			next, ok = res.Index(seg.Index)
			prefix = IndexPath(prefix, seg.Index)
		} else {
			next, ok = res.Get(seg.Key)
			prefix = FieldPath(prefix, seg.Key)
		}
		if !ok {
			return nil, diag.New(diag.TypeMismatch, diag.Pos{}, "no value at %s", prefix)
		}
		res = next
	}
	return res, nil
}
