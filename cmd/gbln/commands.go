package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: gbln/g, json/j, yaml/y (default by file name)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: gbln/g, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gbln").
		WithSynopsis("gbln [opts] command [opts]").
		WithDescription("gbln is a tool for working with typed GBLN documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gblnMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			WriteCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg),
			ConvertCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, plain or xz compressed, in the output format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithSynopsis("fmt [-w] [-l] [files]").
		WithDescription(fmtDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gblnFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

const fmtDescription = `fmt pretty prints GBLN source files, keeping comments.

With no files, fmt formats standard input to the output.  With -w, each
file is rewritten in place.  With -l, fmt lists the files whose
formatting differs and exits with status 1 if there are any.`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("check validates documents and reports every failure with its position and a suggestion").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func WriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WriteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("write").
		WithAliases("w").
		WithSynopsis("write [-io] [-z] [-level n] <in> <out>").
		WithDescription(writeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return write(cfg, cc, args)
		})
	cfg.Write = cmd
	return cmd
}

const writeDescription = `write stores a document in a GBLN file.

The file name suffix follows the file shape: .gbln for source files,
.io.gbln for compact files and .io.gbln.xz for compressed files.  An
existing GBLN suffix on <out> is replaced.  write prints the final path.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-r] <a> <b>").
		WithDescription("diff shows typed differences between 2 documents and exits with status 1 if there are any").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gblnDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-s] [-merge] <patch> [files]").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gblnPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

const patchDescription = `patch applies a patch to documents.

A patch that is an array is a JSON patch (RFC 6902); anything else is a
merge patch (RFC 7386).  Numbers keep the width they had in the document
when the patched value fits it.`

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query [-b] <expr> [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gblnQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

const queryDescription = `query evaluates an expression over documents.

The fields of an object document are variables, and the whole document is
doc.  typeof(path), bound(path) and getpath(path) inspect the typed tree,
as in

  gbln query 'typeof("port") == "U16" && port > 1024' conf.gbln`

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("conv").
		WithSynopsis("convert -O <format> [files]").
		WithDescription("convert translates documents between gbln, json and yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertDocs(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}
