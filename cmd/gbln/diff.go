package main

import (
	"fmt"

	"github.com/gbln-format/go-gbln/diff"
	"github.com/scott-cotton/cli"
)

func gblnDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, cfg.MainConfig, args[0], nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, cfg.MainConfig, args[1], nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	entries := diff.Diff(a, b)
	if len(entries) == 0 {
		return nil
	}
	if err := diff.Format(cc.Out, entries, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
