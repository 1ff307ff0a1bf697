package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convertDocs(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil && (cfg.Out == "" || cfg.Out == "-") {
		return fmt.Errorf("%w: convert requires -O or an -o file name", cli.ErrUsage)
	}
	c, err := cfg.config()
	if err != nil {
		return err
	}
	// json and yaml carry no comments
	c = c.WithStripComments(true)
	files := inputs(args)
	for i, file := range files {
		v, err := getObjFile(cc, cfg.MainConfig, file, nil)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := putObj(cc.Out, cfg.MainConfig, v, c, nil); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	return nil
}
