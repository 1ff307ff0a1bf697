package main

import (
	"fmt"

	"github.com/gbln-format/go-gbln/codec"
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/scott-cotton/cli"
)

func write(cfg *WriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Write.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: write requires 2 args, got %v", cli.ErrUsage, args)
	}
	c, err := cfg.writeConfig()
	if err != nil {
		return err
	}
	comments := ir.NewComments()
	v, err := getObjFile(cc, cfg.MainConfig, args[0], comments)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	path, err := codec.WriteFile(args[1], v, &c, encode.EncodeComments(comments))
	if err != nil {
		return err
	}
	theLog.Debug("wrote", "path", path, "config", c)
	_, err = fmt.Fprintln(cc.Out, path)
	return err
}

// writeConfig is the main config, or the io preset with -io, adjusted by
// -z and -level.
func (cfg *WriteConfig) writeConfig() (config.Config, error) {
	c, err := cfg.config()
	if err != nil {
		return c, err
	}
	if cfg.IO {
		c = config.IO()
	}
	if isSet(cfg.Write, "z") {
		c = c.WithCompress(cfg.Compress)
	}
	if isSet(cfg.Write, "level") {
		if cfg.Level < 0 || cfg.Level > config.MaxLevel {
			return c, fmt.Errorf("%w: compression level %d out of range 0-%d", cli.ErrUsage, cfg.Level, config.MaxLevel)
		}
		c = c.WithCompressionLevel(uint8(cfg.Level))
	}
	return c, nil
}
