package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gbln-format/go-gbln/codec"
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/convert"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/scott-cotton/cli"
)

// getObjFile reads the document at path, "-" being the command input.
// GBLN input may be xz compressed. Comments of GBLN input are recorded
// into comments when it is not nil.
func getObjFile(cc *cli.Context, cfg *MainConfig, path string, comments *ir.Comments) (*ir.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	fmat := cfg.inFormat(path)
	theLog.Debug("reading", "path", path, "format", fmat)
	if fmat.IsGBLN() {
		var opts []parse.ParseOption
		if comments != nil {
			opts = append(opts, parse.ParseComments(comments))
		}
		return codec.Decode(r, opts...)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if fmat.IsJSON() {
		return convert.FromJSON(d)
	}
	return convert.FromYAML(d)
}

// putObj writes v to w in the output format. Compact GBLN text is
// terminated by a newline unless it is compressed.
func putObj(w io.Writer, cfg *MainConfig, v *ir.Value, c config.Config, comments *ir.Comments) error {
	fmat := cfg.outFormat()
	theLog.Debug("writing", "format", fmat, "config", c)
	switch {
	case fmat.IsJSON():
		indent := c.Indent()
		if c.MiniMode() {
			indent = 0
		}
		d, err := convert.ToJSON(v, indent)
		if err != nil {
			return err
		}
		if indent == 0 {
			d = append(d, '\n')
		}
		_, err = w.Write(d)
		return err
	case fmat.IsYAML():
		d, err := convert.ToYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := codec.Encode(w, v, c, cfg.encOpts(w, c, comments)...); err != nil {
		return err
	}
	if c.MiniMode() && !c.Compress() {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// inputs is args, or the command input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer, i, n int) error {
	if i == n-1 {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}
