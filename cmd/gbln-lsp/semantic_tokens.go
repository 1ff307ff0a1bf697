package main

import (
	"context"
	"strings"

	"github.com/gbln-format/go-gbln/token"
	"go.lsp.dev/protocol"
)

// tokenLegend is the order of token types in the semantic tokens legend.
var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenType,
}

const (
	semComment uint32 = iota
	semKeyword
	semString
	semNumber
	semOperator
	semProperty
	semType
)

type semToken struct {
	off, n int
	typ    uint32
}

// semanticTokens classifies the lexed tokens of doc: comments, keys,
// literals, separators and the type suffixes of literals.
func semanticTokens(doc *document) []semToken {
	var res []semToken
	for i := range doc.tokens {
		tok := &doc.tokens[i]
		for _, c := range tok.Comments {
			res = append(res, semToken{off: c.Pos.Offset, n: commentLen(doc.content, c.Pos.Offset), typ: semComment})
		}
		n := len(tok.Bytes)
		var typ uint32
		switch {
		case tok.Type == token.TEOF:
			continue
		case isKey(doc.tokens, i):
			typ = semProperty
		case tok.Type == token.TString:
			typ = semString
		case tok.Type == token.TNumber:
			typ = semNumber
		case tok.Type == token.TTrue, tok.Type == token.TFalse, tok.Type == token.TNull:
			typ = semKeyword
		case tok.Type == token.TColon, tok.Type == token.TComma:
			typ = semOperator
		default:
			continue
		}
		res = append(res, semToken{off: tok.Pos.Offset, n: n, typ: typ})
		if tok.Suffix != "" {
			res = append(res, semToken{off: tok.Pos.Offset + n, n: len(tok.Suffix), typ: semType})
		}
	}
	return res
}

func commentLen(content string, off int) int {
	n := strings.IndexByte(content[off:], '\n')
	if n < 0 {
		return len(content) - off
	}
	return n
}

// encodeTokens renders toks in the relative encoding of the protocol,
// keeping those on lines first through last.
func encodeTokens(lines *lineIndex, toks []semToken, first, last uint32) []uint32 {
	res := []uint32{}
	var prevLine, prevChar uint32
	for _, t := range toks {
		start := lines.position(t.off)
		if start.Line < first || start.Line > last {
			continue
		}
		end := lines.position(t.off + t.n)
		length := end.Character - start.Character
		deltaLine := start.Line - prevLine
		deltaChar := start.Character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		res = append(res, deltaLine, deltaChar, length, t.typ, 0)
		prevLine, prevChar = start.Line, start.Character
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.lines, semanticTokens(doc), 0, ^uint32(0)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(doc.lines, semanticTokens(doc), params.Range.Start.Line, params.Range.End.Line),
	}, nil
}
