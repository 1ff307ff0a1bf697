package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "gbln-lsp"

var (
	version = "0.1.0"

	// stdout carries the protocol
	theLog = log.NewWithOptions(os.Stderr, log.Options{Prefix: lsName, Level: log.InfoLevel})
)

type MainConfig struct {
	Gops    bool `cli:"name=gops desc='start a gops agent'"`
	Verbose bool `cli:"name=v desc='log requests to stderr'"`

	Main *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, lsName).
		WithSynopsis(lsName + " [-gops] [-v]").
		WithDescription("gbln-lsp is a language server for GBLN over stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func serve(cfg *MainConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Main.Parse(cc, args); err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.SetLevel(log.DebugLevel)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "err", err)
		}
		defer agent.Close()
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  cc.In,
		write: cc.Out,
	})
	server := newServer()
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, protocol.ServerHandler(server, nil))
	theLog.Debug("serving", "version", version)
	<-conn.Done()
	return conn.Err()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
