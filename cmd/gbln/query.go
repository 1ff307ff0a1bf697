package main

import (
	"fmt"

	"github.com/gbln-format/go-gbln/query"
	"github.com/scott-cotton/cli"
)

func gblnQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	var q *query.Query
	if cfg.Bool {
		q, err = query.CompileBool(args[0])
	} else {
		q, err = query.Compile(args[0])
	}
	if err != nil {
		return err
	}
	c, err := cfg.config()
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	matched := 0
	for i, file := range files {
		doc, err := getObjFile(cc, cfg.MainConfig, file, nil)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if cfg.Bool {
			ok, err := q.Match(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			theLog.Debug("match", "path", file, "query", q, "result", ok)
			if ok {
				matched++
				fmt.Fprintln(cc.Out, file)
			}
			continue
		}
		res, err := q.Run(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := putObj(cc.Out, cfg.MainConfig, res, c, nil); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(files)); err != nil {
			return err
		}
	}
	if cfg.Bool && matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
