package query

import (
	"github.com/gbln-format/go-gbln/convert"
	"github.com/gbln-format/go-gbln/ir"
)

// env exposes doc to an expression. The fields of an object root are
// variables and the root itself is always available as doc. These
// functions see the typed tree:
//
//	typeof(path)   the type of the value at path, such as "U16"
//	bound(path)    the declared bound of the string at path, 0 if none
//	getpath(path)  the value at path
func env(doc *ir.Value) map[string]any {
	res := map[string]any{}
	if doc.Type() == ir.ObjectType {
		for k, child := range doc.Fields() {
			res[k] = convert.ToAny(child)
		}
	}
	res["doc"] = convert.ToAny(doc)
	res["typeof"] = func(path string) (string, error) {
		v, err := doc.GetPath(path)
		if err != nil {
			return "", err
		}
		return v.Type().String(), nil
	}
	res["bound"] = func(path string) (int, error) {
		v, err := doc.GetPath(path)
		if err != nil {
			return 0, err
		}
		n, _ := v.StrBound()
		return n, nil
	}
	res["getpath"] = func(path string) (any, error) {
		v, err := doc.GetPath(path)
		if err != nil {
			return nil, err
		}
		return convert.ToAny(v), nil
	}
	return res
}
