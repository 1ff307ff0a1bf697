package gbln

import (
	"strings"

	"github.com/gbln-format/go-gbln/codec"
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
)

// Parse parses a complete GBLN document.
func Parse(s string, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.ParseString(s, opts...)
}

// ToString returns the compact text of v.
func ToString(v *ir.Value) (string, error) {
	return Serialize(v, config.IO())
}

// ToStringPretty returns the text of v under the source preset.
func ToStringPretty(v *ir.Value) (string, error) {
	return Serialize(v, config.Source())
}

// Serialize returns the text of v under cfg. Compression does not apply
// to text; see WriteIO.
func Serialize(v *ir.Value, cfg config.Config, opts ...encode.EncodeOption) (string, error) {
	if v == nil {
		return "", diag.New(diag.NullArgument, diag.Pos{}, "serialize of nil value")
	}
	buf := &strings.Builder{}
	opts = append([]encode.EncodeOption{encode.EncodeConfig(cfg)}, opts...)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteIO writes v to a file derived from path in the shape cfg selects,
// config.IO() when cfg is nil, and returns the path written.
func WriteIO(v *ir.Value, path string, cfg *config.Config) (string, error) {
	return codec.WriteFile(path, v, cfg)
}

// ReadIO reads the document at path, whichever shape it has.
func ReadIO(path string) (*ir.Value, error) {
	return codec.ReadFile(path)
}
