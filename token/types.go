package token

import (
	"fmt"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
	TIdent
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TIdent:   "TIdent",
	}[t]
}

// Describe names t for diagnostics.
func (t TokenType) Describe() string {
	switch t {
	case TEOF:
		return "end of input"
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TColon:
		return "':'"
	case TComma:
		return "','"
	case TString:
		return "string"
	case TNumber:
		return "number"
	case TTrue, TFalse:
		return "boolean"
	case TNull:
		return "null"
	case TIdent:
		return "identifier"
	}
	return t.String()
}

// Comment is a '#' comment. Text excludes the '#' and one following
// space, if any.
type Comment struct {
	Pos  diag.Pos
	Text string
}

type Token struct {
	Type TokenType
	Pos  diag.Pos

	// Bytes is the source text of the token without its suffix. For
	// strings it includes the quotes.
	Bytes []byte

	// Suffix is the alphanumeric run directly after a number or a closing
	// quote, such as "i8" or "s16".
	Suffix string

	// Text is the decoded content of a string or identifier.
	Text string

	// Comments are the comments between the previous token and this one.
	Comments []Comment
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

// Len is the length of the token in code points, suffix included.
func (t *Token) Len() int {
	return utf8.RuneCount(t.Bytes) + len(t.Suffix)
}

// Source returns the source text of the token, suffix included.
func (t *Token) Source() string {
	return string(t.Bytes) + t.Suffix
}

func (t *Token) String() string {
	switch t.Type {
	case TString, TIdent:
		return t.Text
	default:
		return t.Source()
	}
}
