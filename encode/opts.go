package encode

import (
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/ir"
)

type EncodeOption func(*EncState)

// EncodeConfig applies the mini mode, indent and comment stripping of c.
// Compression is a file concern and is ignored here.
func EncodeConfig(c config.Config) EncodeOption {
	return func(es *EncState) {
		es.mini = c.MiniMode()
		es.indent = c.Indent()
		es.strip = c.StripComments()
	}
}

func EncodeMini(v bool) EncodeOption {
	return func(es *EncState) { es.mini = v }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

// EncodeComments supplies the comments to emit in pretty mode.
func EncodeComments(c *ir.Comments) EncodeOption {
	return func(es *EncState) { es.comments = c }
}

// EncodeColors colors pretty output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
