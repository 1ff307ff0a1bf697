package patch

import (
	"github.com/gbln-format/go-gbln/convert"
	"github.com/gbln-format/go-gbln/debug"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies an RFC 6902 JSON patch to doc and returns the patched
// document. doc is not modified. See Reconcile for how widths survive
// the trip through JSON.
func Apply(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, diag.Wrap(diag.InvalidSyntax, err, "decoding JSON patch")
	}
	return run(doc, "json-patch", func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc *ir.Value, patch []byte) (*ir.Value, error) {
	return run(doc, "merge-patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

// ApplyValue applies a patch held as a value: an array is a JSON patch,
// anything else a merge patch.
func ApplyValue(doc, patch *ir.Value) (*ir.Value, error) {
	if patch == nil {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "nil patch")
	}
	d, err := convert.ToJSON(patch, 0)
	if err != nil {
		return nil, err
	}
	if patch.Type() == ir.ArrayType {
		return Apply(doc, d)
	}
	return Merge(doc, d)
}

func run(doc *ir.Value, name string, f func([]byte) ([]byte, error)) (*ir.Value, error) {
	if doc == nil {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "%s of nil document", name)
	}
	in, err := convert.ToJSON(doc, 0)
	if err != nil {
		return nil, err
	}
	out, err := f(in)
	if err != nil {
		return nil, diag.Wrap(diag.TypeMismatch, err, "%s does not apply", name)
	}
	res, err := convert.FromJSON(out)
	if err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf(name, "in", doc, "out", res)
	}
	return Reconcile(doc, res)
}
