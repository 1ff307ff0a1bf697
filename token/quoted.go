package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
)

// scanErr reports a failure at a byte offset of the scanned input.
type scanErr struct {
	off  int
	kind diag.Kind
	msg  string
	hint string
}

// scanString decodes the quoted string at the start of d, which must
// begin with '"'. It returns the number of bytes consumed, closing quote
// included.
func scanString(d []byte) (int, string, *scanErr) {
	var sb strings.Builder
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, sb.String(), nil
		case c == '\\':
			n, err := unescape(d[i:], &sb)
			if err != nil {
				if err.kind != diag.UnterminatedString {
					err.off += i
				}
				return 0, "", err
			}
			i += n
		case c < utf8.RuneSelf:
			sb.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return 0, "", &scanErr{off: i, kind: diag.UnexpectedChar,
					msg:  "invalid UTF-8 byte in string",
					hint: "encode the input as UTF-8"}
			}
			sb.WriteRune(r)
			i += sz
		}
	}
	return 0, "", &scanErr{off: 0, kind: diag.UnterminatedString,
		msg:  "string not closed before end of input",
		hint: `add a closing '"'`}
}

// unescape decodes the escape sequence at the start of d, which begins
// with '\'.
func unescape(d []byte, sb *strings.Builder) (int, *scanErr) {
	if len(d) < 2 {
		return 0, &scanErr{kind: diag.UnterminatedString,
			msg: "string not closed before end of input", hint: `add a closing '"'`}
	}
	switch d[1] {
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case '/':
		sb.WriteByte('/')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		r, ok := hex4(d[2:])
		if !ok {
			return 0, badEscape(`\u must be followed by 4 hex digits`)
		}
		n := 6
		if utf16.IsSurrogate(r) {
			if len(d) < 12 || d[6] != '\\' || d[7] != 'u' {
				return 0, badEscape("unpaired UTF-16 surrogate")
			}
			r2, ok := hex4(d[8:])
			if !ok {
				return 0, badEscape(`\u must be followed by 4 hex digits`)
			}
			r = utf16.DecodeRune(r, r2)
			if r == utf8.RuneError {
				return 0, badEscape("invalid UTF-16 surrogate pair")
			}
			n = 12
		}
		sb.WriteRune(r)
		return n, nil
	default:
		r, _ := utf8.DecodeRune(d[1:])
		return 0, badEscape(`unknown escape \` + string(r))
	}
	return 2, nil
}

func badEscape(msg string) *scanErr {
	return &scanErr{kind: diag.InvalidSyntax, msg: msg,
		hint: `valid escapes are \" \\ \/ \b \f \n \r \t and \uXXXX`}
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// UnquotePrefix decodes the quoted string at the start of s and returns
// the number of bytes it spans.
func UnquotePrefix(s string) (int, string, error) {
	if s == "" || s[0] != '"' {
		return 0, "", diag.New(diag.UnexpectedChar, diag.Pos{}, "expected '\"'")
	}
	n, v, err := scanString([]byte(s))
	if err != nil {
		return 0, "", diag.New(err.kind, diag.Pos{}, "at byte %d: %s", err.off, err.msg).Suggest("%s", err.hint)
	}
	return n, v, nil
}

// Unquote decodes a complete quoted string.
func Unquote(s string) (string, error) {
	n, v, err := UnquotePrefix(s)
	if err != nil {
		return "", err
	}
	if n != len(s) {
		return "", diag.New(diag.InvalidSyntax, diag.Pos{}, "trailing text after string")
	}
	return v, nil
}

// Quote returns v as a double quoted string, escaping only what must be
// escaped: quotes, backslashes and control characters.
func Quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(v); {
		c := v[i]
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRuneInString(v[i:])
			if r == utf8.RuneError && sz == 1 {
				sb.WriteString(`�`)
			} else {
				sb.WriteString(v[i : i+sz])
			}
			i += sz
			continue
		}
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				const hexDigits = "0123456789abcdef"
				sb.WriteString(`\u00`)
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xf])
			} else {
				sb.WriteByte(c)
			}
		}
		i++
	}
	sb.WriteByte('"')
	return sb.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '-'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsIdent reports whether v has the shape of a bare identifier.
func IsIdent(v string) bool {
	if v == "" || !isIdentStart(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !isIdentChar(v[i]) {
			return false
		}
	}
	return true
}

// NeedsQuote reports whether the key v must be quoted: it is not an
// identifier, or it reads as a keyword or special float.
func NeedsQuote(v string) bool {
	return !IsIdent(v) || wordType(v) != TIdent
}
