package main

import (
	"fmt"
	"io"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	var ds diag.Diagnostics
	files := inputs(args)
	for _, file := range files {
		_, err := getObjFile(cc, cfg.MainConfig, file, nil)
		if err == nil {
			theLog.Debug("ok", "path", file)
			continue
		}
		d, ok := diag.As(err)
		if !ok {
			return fmt.Errorf("error reading %s: %w", file, err)
		}
		ds.Add(d)
		if !cfg.Quiet {
			report(cc.Out, file, d)
		}
	}
	if err := ds.ErrorOrNil(); err != nil {
		theLog.Debug("check failed", "files", len(files), "failures", len(ds))
		return cli.ExitCodeErr(1)
	}
	return nil
}

// report writes one failure as "file:line:col: kind: message" with its
// hint.
func report(w io.Writer, file string, d *diag.Diagnostic) {
	sep := " "
	if d.Pos.IsValid() {
		sep = ""
	}
	fmt.Fprintf(w, "%s:%s%s\n", file, sep, d.Detail())
}
