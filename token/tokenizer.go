package token

import (
	"bytes"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
)

// Tokenizer splits a GBLN document into tokens. It makes a single forward
// pass over its input and cannot be restarted.
type Tokenizer struct {
	doc  []byte
	off  int
	line int
	col  int

	pending []Comment
}

func NewTokenizer(doc []byte) *Tokenizer {
	return &Tokenizer{doc: doc, line: 1, col: 1}
}

// Tokenize returns all tokens of doc, ending with TEOF.
func Tokenize(doc []byte) ([]Token, error) {
	tz := NewTokenizer(doc)
	var res []Token
	for {
		tok, err := tz.Next()
		if err != nil {
			return res, err
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res, nil
		}
	}
}

func (tz *Tokenizer) pos() diag.Pos {
	return diag.Pos{Offset: tz.off, Line: tz.line, Col: tz.col}
}

// posAt returns the position of byte offset off >= tz.off.
func (tz *Tokenizer) posAt(off int) diag.Pos {
	p := tz.pos()
	for i := tz.off; i < off && i < len(tz.doc); {
		r, sz := utf8.DecodeRune(tz.doc[i:])
		if r == '\n' {
			p.Line++
			p.Col = 1
		} else {
			p.Col++
		}
		i += sz
	}
	p.Offset = off
	return p
}

// advance moves the tokenizer to byte offset off.
func (tz *Tokenizer) advance(off int) {
	p := tz.posAt(off)
	tz.off, tz.line, tz.col = p.Offset, p.Line, p.Col
}

// Next returns the next token. After the end of input it keeps returning
// TEOF.
func (tz *Tokenizer) Next() (Token, error) {
	if err := tz.skipSpace(); err != nil {
		return Token{}, err
	}
	start := tz.pos()
	tok := Token{Pos: start, Comments: tz.pending}
	tz.pending = nil
	if tz.off >= len(tz.doc) {
		tok.Type = TEOF
		return tok, nil
	}
	d := tz.doc[tz.off:]
	c := d[0]
	n := 1
	switch c {
	case '{':
		tok.Type = TLCurl
	case '}':
		tok.Type = TRCurl
	case '[':
		tok.Type = TLSquare
	case ']':
		tok.Type = TRSquare
	case ':':
		tok.Type = TColon
	case ',':
		tok.Type = TComma
	case '"':
		sn, text, serr := scanString(d)
		if serr != nil {
			return Token{}, tz.scanDiag(serr)
		}
		tok.Type = TString
		tok.Text = text
		n = sn
	case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n = scanNumber(d)
		if n == 0 {
			return Token{}, tz.unexpected(d)
		}
		tok.Type = TNumber
	default:
		if !isIdentStart(c) {
			return Token{}, tz.unexpected(d)
		}
		for n < len(d) && isIdentChar(d[n]) {
			n++
		}
		word := string(d[:n])
		tok.Type = wordType(word)
		if tok.Type == TIdent {
			tok.Text = word
		}
		if tok.Type == TNumber {
			// special floats keep their f32/f64 suffix apart
			if len(word) > 3 {
				n = 3
			}
		}
	}
	tok.Bytes = d[:n]
	if tok.Type == TNumber || tok.Type == TString {
		m := n
		for m < len(d) && isAlnum(d[m]) {
			m++
		}
		tok.Suffix = string(d[n:m])
		n = m
	}
	tz.advance(tz.off + n)
	return tok, nil
}

// wordType classifies an identifier-shaped word.
func wordType(w string) TokenType {
	switch w {
	case "true":
		return TTrue
	case "false":
		return TFalse
	case "null":
		return TNull
	case "inf", "nan", "inff32", "inff64", "nanf32", "nanf64":
		return TNumber
	}
	return TIdent
}

// scanNumber returns the length of the number at the start of d, without
// suffix, or 0 if d does not start with a number.
//
//	[+-]? digits ('.' digits)? ([eE] [+-]? digits)?
//	[+-]? inf
func scanNumber(d []byte) int {
	i := 0
	if d[0] == '+' || d[0] == '-' {
		i++
	}
	if bytes.HasPrefix(d[i:], []byte("inf")) {
		return i + 3
	}
	n := digits(d[i:])
	if n == 0 {
		return 0
	}
	i += n
	if i+1 < len(d) && d[i] == '.' && isDigit(d[i+1]) {
		i += 1 + digits(d[i+1:])
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		if n := digits(d[j:]); n > 0 {
			i = j + n
		}
	}
	return i
}

func digits(d []byte) int {
	i := 0
	for i < len(d) && isDigit(d[i]) {
		i++
	}
	return i
}

func (tz *Tokenizer) skipSpace() error {
	for tz.off < len(tz.doc) {
		switch c := tz.doc[tz.off]; c {
		case ' ', '\t', '\r', '\n':
			tz.advance(tz.off + 1)
		case '#':
			p := tz.pos()
			end := bytes.IndexByte(tz.doc[tz.off:], '\n')
			if end < 0 {
				end = len(tz.doc)
			} else {
				end += tz.off
			}
			text := tz.doc[tz.off+1 : end]
			text = bytes.TrimSuffix(text, []byte{'\r'})
			text = bytes.TrimPrefix(text, []byte{' '})
			if !utf8.Valid(text) {
				return diag.New(diag.UnexpectedChar, p, "invalid UTF-8 in comment").
					Suggest("encode the input as UTF-8")
			}
			tz.pending = append(tz.pending, Comment{Pos: p, Text: string(text)})
			tz.advance(end)
		default:
			if c == 0xEF && tz.off == 0 && bytes.HasPrefix(tz.doc, []byte("\xEF\xBB\xBF")) {
				tz.advance(3)
				continue
			}
			return nil
		}
	}
	return nil
}

func (tz *Tokenizer) scanDiag(e *scanErr) error {
	return diag.New(e.kind, tz.posAt(tz.off+e.off), "%s", e.msg).Suggest("%s", e.hint)
}

func (tz *Tokenizer) unexpected(d []byte) error {
	r, sz := utf8.DecodeRune(d)
	p := tz.pos()
	if r == utf8.RuneError && sz == 1 {
		return diag.New(diag.UnexpectedChar, p, "invalid UTF-8 byte 0x%02x", d[0]).
			Suggest("encode the input as UTF-8")
	}
	res := diag.New(diag.UnexpectedChar, p, "unexpected character %q", r)
	switch r {
	case '\'':
		res.Suggest(`use double quotes for strings`)
	case '=':
		res.Suggest(`use ':' between a key and its value`)
	case ';':
		res.Suggest(`use ',' to separate items`)
	case '/':
		res.Suggest(`comments start with '#'`)
	case '+', '-', '.':
		res.Suggest(`numbers need a digit, as in 0.5 or -1`)
	default:
		res.Suggest("remove %q or put the text in double quotes", r)
	}
	return res
}
