// Package config holds the serialization settings of GBLN output.
package config

import (
	"fmt"

	"github.com/gbln-format/go-gbln/diag"
)

// MaxLevel is the highest XZ compression level.
const MaxLevel = 9

// Config is an immutable set of serialization settings. The zero Config
// is pretty output with no indent, no compression and comments kept; use
// IO or Source for presets.
type Config struct {
	miniMode      bool
	compress      bool
	level         uint8
	indent        int
	stripComments bool
}

// New returns a Config, rejecting a level above 9 or a negative indent.
func New(mini, compress bool, level uint8, indent int, strip bool) (Config, error) {
	if level > MaxLevel {
		return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "compression level %d out of range", level).
			Suggest("use a level between 0 and %d", MaxLevel)
	}
	if indent < 0 {
		return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "negative indent %d", indent).
			Suggest("use an indent of 0 or more spaces")
	}
	return Config{
		miniMode:      mini,
		compress:      compress,
		level:         level,
		indent:        indent,
		stripComments: strip,
	}, nil
}

// IO returns the preset for machine files: compact, XZ compressed at
// level 6, comments stripped.
func IO() Config {
	return Config{miniMode: true, compress: true, level: 6, indent: 2, stripComments: true}
}

// Source returns the preset for human edited files: pretty printed with an
// indent of 2, uncompressed, comments kept.
func Source() Config {
	return Config{miniMode: false, compress: false, level: 6, indent: 2, stripComments: false}
}

func (c Config) MiniMode() bool          { return c.miniMode }
func (c Config) Compress() bool          { return c.compress }
func (c Config) CompressionLevel() uint8 { return c.level }
func (c Config) Indent() int             { return c.indent }
func (c Config) StripComments() bool     { return c.stripComments }

func (c Config) WithMiniMode(v bool) Config {
	c.miniMode = v
	return c
}

func (c Config) WithCompress(v bool) Config {
	c.compress = v
	return c
}

// WithCompressionLevel clamps v to 9.
func (c Config) WithCompressionLevel(v uint8) Config {
	c.level = min(v, MaxLevel)
	return c
}

// WithIndent clamps v to 0.
func (c Config) WithIndent(v int) Config {
	c.indent = max(v, 0)
	return c
}

func (c Config) WithStripComments(v bool) Config {
	c.stripComments = v
	return c
}

func (c Config) String() string {
	return fmt.Sprintf("mini=%t compress=%t level=%d indent=%d strip=%t",
		c.miniMode, c.compress, c.level, c.indent, c.stripComments)
}
