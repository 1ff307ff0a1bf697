package main

import (
	"context"
	"sync"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
	"github.com/gbln-format/go-gbln/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	lines   *lineIndex

	// value is nil when the content does not parse; err then holds the
	// failure.
	value     *ir.Value
	err       error
	positions map[*ir.Value]diag.Pos

	// tokens are those lexed before any lexical error.
	tokens []token.Token
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		lines:     newLineIndex(content),
		positions: make(map[*ir.Value]diag.Pos),
	}
	doc.value, doc.err = parse.ParseString(content, parse.ParsePositions(doc.positions))
	doc.tokens, _ = token.Tokenize([]byte(content))
	return doc
}

// valueAt returns the value starting at byte offset off.
func (doc *document) valueAt(off int) *ir.Value {
	for v, p := range doc.positions {
		if p.Offset == off {
			return v
		}
	}
	return nil
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	theLog.Debug("diagnostics", "uri", doc.uri, "version", doc.version, "err", doc.err)
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: validateDocument(doc),
	})
	if err != nil {
		theLog.Warn("publishing diagnostics", "uri", doc.uri, "err", err)
	}
}

// validateDocument reports the parse failure of doc, if any, spanning the
// token where it occurred.
func validateDocument(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d, ok := diag.As(doc.err)
	if !ok {
		d = diag.Wrap(diag.IoFailure, doc.err, "")
	}
	msg := d.Kind.String()
	if d.Message != "" {
		msg += ": " + d.Message
	}
	if d.Suggestion != "" {
		msg += "\nhint: " + d.Suggestion
	}
	return append(res, protocol.Diagnostic{
		Range:    doc.lines.span(d.Pos.Offset, doc.tokenLen(d.Pos.Offset)),
		Severity: protocol.DiagnosticSeverityError,
		Code:     d.Kind.Code(),
		Source:   "gbln",
		Message:  msg,
	})
}

// tokenLen is the byte length of the token at off, or 1.
func (doc *document) tokenLen(off int) int {
	for i := range doc.tokens {
		tok := &doc.tokens[i]
		if tok.Pos.Offset == off && tok.Type != token.TEOF {
			return len(tok.Bytes) + len(tok.Suffix)
		}
	}
	if off >= len(doc.content) {
		return 0
	}
	return 1
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// DidChange takes the last change: the server asks for full document sync.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	n := len(params.ContentChanges)
	if n == 0 {
		return nil
	}
	doc := s.docs.put(string(params.TextDocument.URI), params.ContentChanges[n-1].Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn != nil {
		// clear what the client shows for the closed document
		return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
