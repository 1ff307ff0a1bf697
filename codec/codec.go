package codec

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/debug"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/format"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/ulikunitz/xz"
)

// dictCaps maps a compression level to an LZMA dictionary capacity,
// following the xz presets.
var dictCaps = [...]int{
	0: 256 << 10,
	1: 1 << 20,
	2: 2 << 20,
	3: 4 << 20,
	4: 4 << 20,
	5: 8 << 20,
	6: 8 << 20,
	7: 16 << 20,
	8: 32 << 20,
	9: 64 << 20,
}

func dictCap(level uint8) int {
	return dictCaps[min(int(level), config.MaxLevel)]
}

// Encode writes v to w in the shape cfg selects. Extra options are
// passed to the serializer after those derived from cfg.
func Encode(w io.Writer, v *ir.Value, cfg config.Config, opts ...encode.EncodeOption) error {
	if v == nil {
		return diag.New(diag.NullArgument, diag.Pos{}, "encode of nil value")
	}
	shape := format.ShapeFor(cfg)
	if debug.Codec() {
		debug.Logf("encode", "shape", shape, "config", cfg.String())
	}
	opts = append([]encode.EncodeOption{encode.EncodeConfig(cfg)}, opts...)
	if !shape.Compressed() {
		return encode.Encode(v, w, opts...)
	}
	xw, err := xz.WriterConfig{
		DictCap:  dictCap(cfg.CompressionLevel()),
		CheckSum: xz.CRC64,
	}.NewWriter(w)
	if err != nil {
		return diag.Wrap(diag.IoFailure, err, "starting xz stream")
	}
	if err := encode.Encode(v, xw, opts...); err != nil {
		xw.Close()
		return diag.Wrap(diag.IoFailure, err, "compressing")
	}
	if err := xw.Close(); err != nil {
		return diag.Wrap(diag.IoFailure, err, "finishing xz stream")
	}
	return nil
}

// Marshal returns v encoded as Encode would write it.
func Marshal(v *ir.Value, cfg config.Config, opts ...encode.EncodeOption) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, v, cfg, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one document from r. An XZ stream is recognized by its
// header bytes, whatever the source is called.
func Decode(r io.Reader, opts ...parse.ParseOption) (*ir.Value, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(format.Magic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, diag.Wrap(diag.IoFailure, err, "reading")
	}
	var src io.Reader = br
	compressed := format.HasMagic(head)
	if compressed {
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, diag.Wrap(diag.IoFailure, err, "opening xz stream")
		}
		src = xr
	}
	d, err := io.ReadAll(src)
	if err != nil {
		if compressed {
			return nil, diag.Wrap(diag.IoFailure, err, "decompressing")
		}
		return nil, diag.Wrap(diag.IoFailure, err, "reading")
	}
	if debug.Codec() {
		debug.Logf("decode", "compressed", compressed, "bytes", len(d))
	}
	return parse.Parse(d, opts...)
}

// Unmarshal decodes a document held in memory.
func Unmarshal(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return Decode(bytes.NewReader(d), opts...)
}
