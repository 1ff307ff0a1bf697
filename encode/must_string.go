package encode

import (
	"strings"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/ir"
)

// Compact returns the compact rendering of v. It panics if v is nil.
func Compact(v *ir.Value) string {
	return MustString(v, EncodeMini(true))
}

// Pretty returns v rendered with the mini mode, indent and comment
// setting of cfg, ending with a newline unless cfg is in mini mode.
func Pretty(v *ir.Value, cfg config.Config, opts ...EncodeOption) string {
	return MustString(v, append([]EncodeOption{EncodeConfig(cfg)}, opts...)...)
}

func MustString(v *ir.Value, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
