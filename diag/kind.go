package diag

import "fmt"

// Kind classifies a Diagnostic. The numeric values are stable and match
// the error codes of the GBLN C ABI.
type Kind int

const (
	None Kind = iota
	UnexpectedChar
	UnterminatedString
	UnexpectedToken
	UnexpectedEof
	InvalidSyntax
	IntOutOfRange
	StringTooLong
	TypeMismatch
	InvalidTypeHint
	DuplicateKey
	NullArgument
	IoFailure
)

var kindNames = map[Kind]string{
	None:               "ok",
	UnexpectedChar:     "unexpected character",
	UnterminatedString: "unterminated string",
	UnexpectedToken:    "unexpected token",
	UnexpectedEof:      "unexpected end of input",
	InvalidSyntax:      "invalid syntax",
	IntOutOfRange:      "integer out of range",
	StringTooLong:      "string too long",
	TypeMismatch:       "type mismatch",
	InvalidTypeHint:    "invalid type hint",
	DuplicateKey:       "duplicate key",
	NullArgument:       "null argument",
	IoFailure:          "i/o failure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", int(k))
}

// Error makes a Kind usable as a sentinel with errors.Is.
func (k Kind) Error() string { return k.String() }

// Code returns the C ABI error code of k.
func (k Kind) Code() int { return int(k) }

// Kinds returns every failure kind in code order.
func Kinds() []Kind {
	return []Kind{
		UnexpectedChar,
		UnterminatedString,
		UnexpectedToken,
		UnexpectedEof,
		InvalidSyntax,
		IntOutOfRange,
		StringTooLong,
		TypeMismatch,
		InvalidTypeHint,
		DuplicateKey,
		NullArgument,
		IoFailure,
	}
}
