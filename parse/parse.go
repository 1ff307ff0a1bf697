package parse

import (
	"github.com/gbln-format/go-gbln/debug"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/token"
)

type parser struct {
	tz    *token.Tokenizer
	tok   token.Token
	opts  *parseOpts
	depth int

	// comments read but not yet attached to a path
	pending []string
}

// Parse parses a complete GBLN document: exactly one value followed by
// the end of input. Any failure is fatal and no partial tree is
// returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(o)
	}
	p := &parser{tz: token.NewTokenizer(d), opts: o}
	v, err := p.document()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed", "err", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed", "value", v)
	}
	return v, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

func (p *parser) document() (*ir.Value, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Type == token.TEOF {
		return nil, diag.New(diag.UnexpectedEof, p.tok.Pos, "empty document").
			Suggest("a document holds exactly one value, such as {}")
	}
	p.attachLeading("")
	v, err := p.value("")
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.TEOF {
		return nil, diag.New(diag.InvalidSyntax, p.tok.Pos, "unexpected %s after the root value", p.tok.Type.Describe()).
			Suggest("a document holds exactly one value; wrap several values in an array")
	}
	if p.opts.comments != nil && len(p.pending) != 0 {
		p.opts.comments.AddFooter(p.pending...)
	}
	p.pending = nil
	return v, nil
}

func (p *parser) next() error {
	tok, err := p.tz.Next()
	if err != nil {
		return err
	}
	if debug.Lex() {
		debug.Logf("token", "type", tok.Type, "pos", tok.Pos, "src", tok.Source())
	}
	p.tok = tok
	for _, c := range tok.Comments {
		p.pending = append(p.pending, c.Text)
	}
	return nil
}

func (p *parser) attachLeading(path string) {
	if len(p.pending) == 0 {
		return
	}
	if p.opts.comments != nil {
		p.opts.comments.AddLeading(path, p.pending...)
	}
	p.pending = nil
}

func (p *parser) attachTrailing(path string) {
	if len(p.pending) == 0 {
		return
	}
	if p.opts.comments != nil {
		p.opts.comments.AddTrailing(path, p.pending...)
	}
	p.pending = nil
}

func (p *parser) record(v *ir.Value, pos diag.Pos) {
	if p.opts.positions != nil {
		p.opts.positions[v] = pos
	}
}

func (p *parser) value(path string) (*ir.Value, error) {
	tok := p.tok
	var (
		v   *ir.Value
		err error
	)
	switch tok.Type {
	case token.TLCurl:
		return p.object(path)
	case token.TLSquare:
		return p.array(path)
	case token.TString:
		v, err = p.str(&tok)
	case token.TNumber:
		v, err = number(&tok)
	case token.TTrue:
		v = ir.FromBool(true)
	case token.TFalse:
		v = ir.FromBool(false)
	case token.TNull:
		v = ir.Null()
	case token.TIdent:
		return nil, diag.New(diag.InvalidSyntax, tok.Pos, "bare identifier %q is not a value", tok.Text).
			Suggest("quote it: %s", token.Quote(tok.Text))
	case token.TEOF:
		return nil, diag.New(diag.UnexpectedEof, tok.Pos, "expected a value").
			Suggest("complete the document")
	default:
		return nil, diag.New(diag.UnexpectedToken, tok.Pos, "expected a value, found %s", tok.Type.Describe()).
			Suggest("insert a value before %s", tok.Type.Describe())
	}
	if err != nil {
		return nil, err
	}
	p.record(v, tok.Pos)
	if err := p.next(); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) enter(pos diag.Pos) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return diag.New(diag.InvalidSyntax, pos, "nesting deeper than %d levels", p.opts.maxDepth).
			Suggest("flatten the document")
	}
	return nil
}

func (p *parser) object(path string) (*ir.Value, error) {
	open := p.tok
	if err := p.enter(open.Pos); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	res := ir.NewObject()
	p.record(res, open.Pos)
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Type == token.TRCurl {
		p.attachTrailing(path)
		return res, p.next()
	}
	for {
		keyTok := p.tok
		key, err := p.key()
		if err != nil {
			return nil, err
		}
		childPath := ir.FieldPath(path, key)
		p.attachLeading(childPath)
		if _, dup := res.Get(key); dup {
			return nil, diag.New(diag.DuplicateKey, keyTok.Pos, "key %q already present", key).
				Suggest("rename or remove one of the %q fields", key)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.tok.Type {
		case token.TColon:
		case token.TEOF:
			return nil, diag.New(diag.UnexpectedEof, p.tok.Pos, "expected ':' after key %q", key).
				Suggest("add ': value' after the key")
		default:
			return nil, diag.New(diag.UnexpectedToken, p.tok.Pos, "expected ':' after key %q, found %s", key, p.tok.Type.Describe()).
				Suggest("separate keys from values with ':'")
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		p.attachLeading(childPath)
		child, err := p.value(childPath)
		if err != nil {
			return nil, err
		}
		if err := res.Insert(key, child); err != nil {
			return nil, err
		}
		done, err := p.separator(open, token.TRCurl, path)
		if err != nil {
			return nil, err
		}
		if done {
			return res, nil
		}
	}
}

func (p *parser) array(path string) (*ir.Value, error) {
	open := p.tok
	if err := p.enter(open.Pos); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	res := ir.NewArray()
	p.record(res, open.Pos)
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Type == token.TRSquare {
		p.attachTrailing(path)
		return res, p.next()
	}
	for i := 0; ; i++ {
		childPath := ir.IndexPath(path, i)
		p.attachLeading(childPath)
		child, err := p.value(childPath)
		if err != nil {
			return nil, err
		}
		if err := res.Push(child); err != nil {
			return nil, err
		}
		done, err := p.separator(open, token.TRSquare, path)
		if err != nil {
			return nil, err
		}
		if done {
			return res, nil
		}
	}
}

// separator consumes the ',' or closing bracket after an item. It reports
// whether the container is closed.
func (p *parser) separator(open token.Token, closer token.TokenType, path string) (bool, error) {
	switch p.tok.Type {
	case closer:
		p.attachTrailing(path)
		return true, p.next()
	case token.TComma:
		comma := p.tok
		if err := p.next(); err != nil {
			return false, err
		}
		if p.tok.Type == closer {
			return false, diag.New(diag.InvalidSyntax, comma.Pos, "trailing comma").
				Suggest("remove the trailing comma")
		}
		return false, nil
	case token.TEOF:
		return false, diag.New(diag.UnexpectedEof, p.tok.Pos, "%s opened at %s is not closed", open.Type.Describe(), open.Pos).
			Suggest("add %s", closer.Describe())
	default:
		return false, diag.New(diag.UnexpectedToken, p.tok.Pos, "expected ',' or %s, found %s", closer.Describe(), p.tok.Type.Describe()).
			Suggest("separate items with ','")
	}
}

// key reads an object key without consuming it.
func (p *parser) key() (string, error) {
	tok := p.tok
	switch tok.Type {
	case token.TString:
		if tok.Suffix != "" {
			return "", diag.New(diag.InvalidSyntax, tok.Pos, "suffix %q on a key", tok.Suffix).
				Suggest("remove the suffix; keys are plain strings")
		}
		return tok.Text, nil
	case token.TIdent:
		return tok.Text, nil
	case token.TTrue, token.TFalse, token.TNull:
		return string(tok.Bytes), nil
	case token.TNumber:
		if s := string(tok.Bytes); tok.Suffix == "" && (s == "inf" || s == "nan") {
			return s, nil
		}
		return "", diag.New(diag.UnexpectedToken, tok.Pos, "expected a key, found number %s", tok.Source()).
			Suggest("quote the key: %s", token.Quote(tok.Source()))
	case token.TEOF:
		return "", diag.New(diag.UnexpectedEof, tok.Pos, "expected a key").
			Suggest("add a field or close the object with '}'")
	default:
		return "", diag.New(diag.UnexpectedToken, tok.Pos, "expected a key, found %s", tok.Type.Describe()).
			Suggest("quote the key")
	}
}
