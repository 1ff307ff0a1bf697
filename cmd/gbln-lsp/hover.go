package main

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.value == nil {
		return nil, nil
	}
	i := doc.tokenAt(doc.lines.offset(params.Position))
	if i < 0 {
		return nil, nil
	}
	tok := &doc.tokens[i]
	target := tok
	if isKey(doc.tokens, i) {
		// a key describes its value
		target = &doc.tokens[i+2]
	}
	v := doc.valueAt(target.Pos.Offset)
	if v == nil {
		return nil, nil
	}
	rng := doc.lines.span(tok.Pos.Offset, len(tok.Bytes)+len(tok.Suffix))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(v),
		},
		Range: &rng,
	}, nil
}

// tokenAt returns the index of the token covering byte offset off, or -1.
func (doc *document) tokenAt(off int) int {
	for i := range doc.tokens {
		tok := &doc.tokens[i]
		if tok.Type == token.TEOF {
			break
		}
		start := tok.Pos.Offset
		if off >= start && off < start+len(tok.Bytes)+len(tok.Suffix) {
			return i
		}
	}
	return -1
}

// isKey reports whether tokens[i] is an object key.
func isKey(tokens []token.Token, i int) bool {
	if i+2 >= len(tokens) || tokens[i+1].Type != token.TColon {
		return false
	}
	switch tokens[i].Type {
	case token.TString, token.TIdent, token.TTrue, token.TFalse, token.TNull, token.TNumber:
		return true
	}
	return false
}

func hoverText(v *ir.Value) string {
	parts := []string{fmt.Sprintf("**%s** %s", v.Type(), describe(v))}
	if v.Type().IsLeaf() {
		val := encode.Scalar(v)
		if utf8.RuneCountInString(val) > 60 {
			val = string([]rune(val)[:60]) + "..."
		}
		parts = append(parts, fmt.Sprintf("`%s`", val))
	}
	path := v.Path()
	if path == "" {
		path = "."
	}
	parts = append(parts, fmt.Sprintf("path `%s`", path))
	return strings.Join(parts, "\n\n")
}

func describe(v *ir.Value) string {
	t := v.Type()
	switch {
	case t.IsSigned():
		lo, hi := ir.IntRange(t)
		return fmt.Sprintf("signed %d-bit integer, %d to %d", t.Bits(), lo, hi)
	case t.IsUnsigned():
		return fmt.Sprintf("unsigned %d-bit integer, 0 to %d", t.Bits(), ir.UintMax(t))
	case t.IsFloat():
		return fmt.Sprintf("%d-bit float", t.Bits())
	}
	switch t {
	case ir.StrType:
		s, _ := v.AsString()
		n := utf8.RuneCountInString(s)
		if bound, _ := v.StrBound(); bound > 0 {
			return fmt.Sprintf("string of %d characters, bound %d", n, bound)
		}
		return fmt.Sprintf("string of %d characters", n)
	case ir.BoolType:
		return "boolean"
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", v.NumFields())
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", v.Len())
	}
	return ""
}
