package main

import (
	"context"

	"github.com/gbln-format/go-gbln/ir"
	"go.lsp.dev/protocol"
)

// Completion offers type suffixes directly after a digit or a closing
// quote, and literal keywords elsewhere.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := doc.lines.offset(params.Position)
	return &protocol.CompletionList{Items: completions(doc.content, off)}, nil
}

func completions(content string, off int) []protocol.CompletionItem {
	var prev byte
	if off > 0 && off <= len(content) {
		prev = content[off-1]
	}
	var items []protocol.CompletionItem
	switch {
	case prev >= '0' && prev <= '9':
		for _, t := range ir.Types() {
			if !t.IsNumber() {
				continue
			}
			items = append(items, protocol.CompletionItem{
				Label:  t.Suffix(),
				Kind:   protocol.CompletionItemKindUnit,
				Detail: describeType(t),
			})
		}
	case prev == '"':
		items = append(items, protocol.CompletionItem{
			Label:      "s",
			Kind:       protocol.CompletionItemKindUnit,
			Detail:     "bounded string, as in \"abc\"s8",
			InsertText: "s",
		})
	default:
		for _, kw := range []string{"true", "false", "null", "inf", "nan"} {
			items = append(items, protocol.CompletionItem{
				Label: kw,
				Kind:  protocol.CompletionItemKindKeyword,
			})
		}
	}
	return items
}

func describeType(t ir.Type) string {
	switch {
	case t.IsSigned():
		return "signed integer"
	case t.IsUnsigned():
		return "unsigned integer"
	}
	return "float"
}
