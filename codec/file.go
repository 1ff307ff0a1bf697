package codec

import (
	"fmt"
	"os"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/debug"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/format"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/google/renameio/v2"
)

// WriteFile writes v next to path in the shape cfg selects, replacing
// any GBLN family suffix of path with the suffix of that shape. A nil cfg
// means config.IO(). It returns the path written.
//
// The file is replaced atomically: readers see either the old content or
// the new.
func WriteFile(path string, v *ir.Value, cfg *config.Config, opts ...encode.EncodeOption) (string, error) {
	c := config.IO()
	if cfg != nil {
		c = *cfg
	}
	if v == nil {
		return "", diag.New(diag.NullArgument, diag.Pos{}, "write of nil value")
	}
	if path == "" {
		return "", diag.New(diag.NullArgument, diag.Pos{}, "write to an empty path")
	}
	d, err := Marshal(v, c, opts...)
	if err != nil {
		return "", err
	}
	out := format.PathFor(path, format.ShapeFor(c))
	if err := renameio.WriteFile(out, d, 0o644); err != nil {
		return "", diag.Wrap(diag.IoFailure, err, "writing file")
	}
	if debug.Codec() {
		debug.Logf("wrote", "path", out, "bytes", len(d))
	}
	return out, nil
}

// ReadFile reads the document at path, decompressing it if it holds an
// XZ stream.
func ReadFile(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	if path == "" {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "read of an empty path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.Wrap(diag.IoFailure, err, "reading file")
	}
	defer f.Close()
	v, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if debug.Codec() {
		debug.Logf("read", "path", path)
	}
	return v, nil
}
