package main

import (
	"bytes"
	"context"

	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return nil, nil
	}
	c := config.Source()
	if params.Options.TabSize > 0 {
		c = c.WithIndent(int(params.Options.TabSize))
	}
	formatted, err := formatDocument(doc.content, c)
	if err != nil {
		// no edits for text that does not parse
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range:   doc.lines.all(),
			NewText: formatted,
		},
	}, nil
}

// formatDocument pretty prints content under c, keeping its comments.
func formatDocument(content string, c config.Config) (string, error) {
	comments := ir.NewComments()
	v, err := parse.ParseString(content, parse.ParseComments(comments))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := encode.Encode(v, &buf, encode.EncodeConfig(c), encode.EncodeComments(comments)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
