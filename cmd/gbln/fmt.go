package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/google/renameio/v2"
	"github.com/scott-cotton/cli"
)

func gblnFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	c, err := cfg.config()
	if err != nil {
		return err
	}
	// fmt produces source text
	c = c.WithCompress(false)
	differs := false
	for _, file := range inputs(args) {
		d, err := readSource(cc, file)
		if err != nil {
			return err
		}
		out, err := formatSource(d, c)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		same := bytes.Equal(d, out)
		switch {
		case cfg.List:
			if !same {
				differs = true
				fmt.Fprintln(cc.Out, file)
			}
		case cfg.Write:
			if same {
				continue
			}
			theLog.Debug("rewriting", "path", file)
			if err := renameio.WriteFile(file, out, 0o644); err != nil {
				return err
			}
		default:
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readSource(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(path)
}

// formatSource reformats GBLN source text under c, carrying comments
// unless c strips them.
func formatSource(d []byte, c config.Config) ([]byte, error) {
	comments := ir.NewComments()
	v, err := parse.Parse(d, parse.ParseComments(comments))
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(v, buf, encode.EncodeConfig(c), encode.EncodeComments(comments)); err != nil {
		return nil, err
	}
	if c.MiniMode() {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
