package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/format"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Mini       bool   `cli:"name=m aliases=mini desc='compact output'"`
	Indent     int    `cli:"name=indent desc='spaces per level of pretty output'"`
	Strip      bool   `cli:"name=strip desc='drop comments from the output'"`
	Verbose    bool   `cli:"name=v desc='log progress to stderr'"`
	ConfigFile string `cli:"name=config desc='TOML file with output settings'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// isSet reports whether the option name was given on the command line.
func isSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func (cfg *MainConfig) setup() {
	if cfg.Verbose {
		theLog.SetLevel(log.DebugLevel)
	}
}

// config returns the output settings: the -config file or the source
// preset, overridden by -m, -indent and -strip.
func (cfg *MainConfig) config() (config.Config, error) {
	c := config.Source()
	if cfg.ConfigFile != "" {
		var err error
		c, err = config.Load(cfg.ConfigFile)
		if err != nil {
			return c, err
		}
		theLog.Debug("loaded config", "path", cfg.ConfigFile, "config", c)
	}
	if isSet(cfg.Main, "m") {
		c = c.WithMiniMode(cfg.Mini)
	}
	if isSet(cfg.Main, "strip") {
		c = c.WithStripComments(cfg.Strip)
	}
	if isSet(cfg.Main, "indent") {
		if cfg.Indent < 0 {
			return c, fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
		}
		c = c.WithIndent(cfg.Indent)
	}
	return c, nil
}

// inFormat is the format of the input at path: -I when given, otherwise
// by file name.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if path == "-" {
		return format.GBLNFormat
	}
	return format.FormatOf(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return format.FormatOf(cfg.Out)
	}
	return format.GBLNFormat
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if isSet(cfg.Main, "color") {
		return cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, c config.Config, comments *ir.Comments) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeConfig(c)}
	if comments != nil {
		res = append(res, encode.EncodeComments(comments))
	}
	if cfg.colorize(w) && !format.ShapeFor(c).Compressed() {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the file'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type WriteConfig struct {
	*MainConfig
	IO       bool `cli:"name=io desc='use the io preset: compact and compressed'"`
	Compress bool `cli:"name=z desc='compress with xz'"`
	Level    int  `cli:"name=level desc='xz compression level 0-9'"`

	Write *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as a GBLN string'"`
	Merge  bool `cli:"name=merge desc='treat the patch as a merge patch even when it is an array'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Bool bool `cli:"name=b desc='print the files for which the expression is true'"`

	Query *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}
