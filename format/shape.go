package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/debug"
)

// Shape is the on-disk layout of a GBLN file.
type Shape int

const (
	// SourceShape is pretty text meant for people.
	SourceShape Shape = iota
	// IOShape is compact text.
	IOShape
	// CompressedShape is compact text in an XZ stream.
	CompressedShape
)

// Magic opens every XZ stream.
var Magic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// HasMagic reports whether d starts with the XZ stream header.
func HasMagic(d []byte) bool {
	return bytes.HasPrefix(d, Magic)
}

// ShapeFor picks the file shape for c. Compression applies only to mini
// output; a pretty config asking for it is written as source.
func ShapeFor(c config.Config) Shape {
	switch {
	case c.MiniMode() && c.Compress():
		return CompressedShape
	case c.MiniMode():
		return IOShape
	}
	if c.Compress() && debug.Encode() {
		debug.Logf("compression ignored for pretty output", "config", c.String())
	}
	return SourceShape
}

func (s Shape) String() string {
	switch s {
	case SourceShape:
		return "source"
	case IOShape:
		return "io"
	case CompressedShape:
		return "compressed"
	}
	return fmt.Sprintf("<err: %d is not a shape>", int(s))
}

// Suffix returns the file extension of s (including the dot).
func (s Shape) Suffix() string {
	switch s {
	case IOShape:
		return ".io.gbln"
	case CompressedShape:
		return ".io.gbln.xz"
	default:
		return ".gbln"
	}
}

// Compressed reports whether files of shape s hold an XZ stream.
func (s Shape) Compressed() bool { return s == CompressedShape }

// ShapeOf returns the shape named by the suffix of path, if any.
func ShapeOf(path string) (Shape, bool) {
	for _, s := range []Shape{CompressedShape, IOShape, SourceShape} {
		if hasSuffix(path, s.Suffix()) {
			return s, true
		}
	}
	return SourceShape, false
}

// PathFor returns path with its GBLN family suffix, if any, replaced by
// the suffix of s.
func PathFor(path string, s Shape) string {
	if cur, ok := ShapeOf(path); ok {
		path = path[:len(path)-len(cur.Suffix())]
	}
	return path + s.Suffix()
}

func hasSuffix(path, suffix string) bool {
	return len(path) > len(suffix) && strings.EqualFold(path[len(path)-len(suffix):], suffix)
}
