package format

import (
	"errors"
	"testing"

	"github.com/gbln-format/go-gbln/config"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"g": GBLNFormat, "json": JSONFormat, "yml": YAMLFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || f != YAMLFormat {
		t.Errorf("UnmarshalText: %v %v", f, err)
	}
	if Format(9).String() == "" {
		t.Error("empty name for a bad format")
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.json":        JSONFormat,
		"a.YAML":        YAMLFormat,
		"a.yml":         YAMLFormat,
		"a.gbln":        GBLNFormat,
		"a.io.gbln.xz":  GBLNFormat,
		"no-extension":  GBLNFormat,
		"dir.json/file": GBLNFormat,
	}
	for in, want := range tests {
		if got := FormatOf(in); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestShapeFor(t *testing.T) {
	tests := []struct {
		cfg  config.Config
		want Shape
	}{
		{config.IO(), CompressedShape},
		{config.IO().WithCompress(false), IOShape},
		{config.Source(), SourceShape},
		{config.Source().WithCompress(true), SourceShape},
	}
	for _, tt := range tests {
		if got := ShapeFor(tt.cfg); got != tt.want {
			t.Errorf("ShapeFor(%s) = %s, want %s", tt.cfg, got, tt.want)
		}
	}
}

func TestPathFor(t *testing.T) {
	tests := []struct {
		in    string
		shape Shape
		want  string
	}{
		{"data", CompressedShape, "data.io.gbln.xz"},
		{"data", IOShape, "data.io.gbln"},
		{"data", SourceShape, "data.gbln"},
		{"data.gbln", CompressedShape, "data.io.gbln.xz"},
		{"data.io.gbln", SourceShape, "data.gbln"},
		{"data.io.gbln.xz", IOShape, "data.io.gbln"},
		{"data.io.gbln.xz", CompressedShape, "data.io.gbln.xz"},
		{"dir/data.json", SourceShape, "dir/data.json.gbln"},
	}
	for _, tt := range tests {
		if got := PathFor(tt.in, tt.shape); got != tt.want {
			t.Errorf("PathFor(%q, %s) = %q, want %q", tt.in, tt.shape, got, tt.want)
		}
	}
}

func TestHasMagic(t *testing.T) {
	if !HasMagic([]byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00, 1, 2}) {
		t.Error("xz header not detected")
	}
	for _, d := range [][]byte{nil, {0xFD, 0x37}, []byte(`{a:1}`)} {
		if HasMagic(d) {
			t.Errorf("false positive on %q", d)
		}
	}
}
