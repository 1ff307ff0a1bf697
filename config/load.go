package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gbln-format/go-gbln/diag"
)

// file is the TOML form of a Config. Pointers distinguish unset keys,
// which keep the preset value.
type file struct {
	Preset           string `toml:"preset"`
	MiniMode         *bool  `toml:"mini_mode"`
	Compress         *bool  `toml:"compress"`
	CompressionLevel *int   `toml:"compression_level"`
	Indent           *int   `toml:"indent"`
	StripComments    *bool  `toml:"strip_comments"`
}

// Load reads a Config from a TOML file:
//
//	preset = "source"        # or "io", the default
//	indent = 4
//	strip_comments = true
//
// Keys other than preset, mini_mode, compress, compression_level, indent
// and strip_comments are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, diag.Wrap(diag.IoFailure, err, "reading config")
	}
	return Parse(data)
}

// Parse reads a Config from TOML text as described for Load.
func Parse(data []byte) (Config, error) {
	f := &file{}
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return Config{}, diag.Wrap(diag.InvalidSyntax, err, "decoding config")
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "unknown config keys: %s", strings.Join(keys, ", ")).
			Suggest("valid keys are preset, mini_mode, compress, compression_level, indent and strip_comments")
	}
	var c Config
	switch f.Preset {
	case "", "io":
		c = IO()
	case "source":
		c = Source()
	default:
		return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "unknown preset %q", f.Preset).
			Suggest(`use "io" or "source"`)
	}
	if f.MiniMode != nil {
		c = c.WithMiniMode(*f.MiniMode)
	}
	if f.Compress != nil {
		c = c.WithCompress(*f.Compress)
	}
	if f.CompressionLevel != nil {
		if *f.CompressionLevel < 0 || *f.CompressionLevel > MaxLevel {
			return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "compression level %d out of range", *f.CompressionLevel).
				Suggest("use a level between 0 and %d", MaxLevel)
		}
		c = c.WithCompressionLevel(uint8(*f.CompressionLevel))
	}
	if f.Indent != nil {
		if *f.Indent < 0 {
			return Config{}, diag.New(diag.InvalidSyntax, diag.Pos{}, "negative indent %d", *f.Indent)
		}
		c = c.WithIndent(*f.Indent)
	}
	if f.StripComments != nil {
		c = c.WithStripComments(*f.StripComments)
	}
	return c, nil
}

// MarshalTOML renders c in the form Load reads.
func (c Config) MarshalTOML() ([]byte, error) {
	return []byte(fmt.Sprintf("mini_mode = %t\ncompress = %t\ncompression_level = %d\nindent = %d\nstrip_comments = %t\n",
		c.miniMode, c.compress, c.level, c.indent, c.stripComments)), nil
}
