package main

import (
	"fmt"

	"github.com/gbln-format/go-gbln/ir"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := cfg.config()
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		comments := ir.NewComments()
		v, err := getObjFile(cc, cfg.MainConfig, file, comments)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := putObj(cc.Out, cfg.MainConfig, v, c, comments); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}
