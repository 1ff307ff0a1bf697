package main

import (
	"fmt"

	"github.com/gbln-format/go-gbln/convert"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/gbln-format/go-gbln/patch"
	"github.com/scott-cotton/cli"
)

func gblnPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := cfg.getPatch(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	c, err := cfg.config()
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	for i, file := range files {
		doc, err := getObjFile(cc, cfg.MainConfig, file, nil)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := cfg.apply(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := putObj(cc.Out, cfg.MainConfig, res, c, nil); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *PatchConfig) getPatch(cc *cli.Context, arg string) (*ir.Value, error) {
	if cfg.String {
		return parse.ParseString(arg)
	}
	return getObjFile(cc, cfg.MainConfig, arg, nil)
}

func (cfg *PatchConfig) apply(doc, p *ir.Value) (*ir.Value, error) {
	if !cfg.Merge {
		return patch.ApplyValue(doc, p)
	}
	d, err := convert.ToJSON(p, 0)
	if err != nil {
		return nil, err
	}
	return patch.Merge(doc, d)
}
