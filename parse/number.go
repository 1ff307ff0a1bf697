package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/token"
)

const suffixHint = "use one of i8, i16, i32, i64, u8, u16, u32, u64, f32 or f64"

// number resolves a number token to a value of the width its suffix
// names, or of the default width.
func number(tok *token.Token) (*ir.Value, error) {
	text := string(tok.Bytes)
	body := strings.TrimLeft(text, "+-")
	special := body == "inf" || body == "nan"
	isFloat := special || strings.ContainsAny(body, ".eE")

	if tok.Suffix == "" {
		if isFloat {
			return float(tok, text, ir.F64Type)
		}
		return defaultInt(tok, text)
	}
	if tok.Suffix[0] == 's' && isBound(tok.Suffix) {
		return nil, diag.New(diag.TypeMismatch, tok.Pos, "string bound %q on a number", tok.Suffix).
			Suggest("quote the value to make it a string, or use a numeric suffix")
	}
	t, ok := ir.SuffixType(tok.Suffix)
	if !ok {
		return nil, diag.New(diag.InvalidTypeHint, tok.Pos, "unknown type suffix %q", tok.Suffix).
			Suggest(suffixHint)
	}
	switch {
	case t.IsFloat():
		return float(tok, text, t)
	case isFloat:
		return nil, diag.New(diag.TypeMismatch, tok.Pos, "integer suffix %q on the non-integer %s", tok.Suffix, text).
			Suggest("use f32 or f64, or write an integer")
	case t.IsSigned():
		return signed(tok, text, t)
	default:
		return unsigned(tok, text, t)
	}
}

func isBound(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func defaultInt(tok *token.Token, text string) (*ir.Value, error) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return ir.FromI64(i), nil
	}
	if text[0] != '-' {
		if u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64); err == nil {
			return ir.FromU64(u), nil
		}
	}
	return nil, diag.New(diag.IntOutOfRange, tok.Pos, "%s does not fit in 64 bits", text).
		Suggest("write it as a float, such as %s.0", strings.TrimPrefix(text, "+"))
}

func signed(tok *token.Token, text string, t ir.Type) (*ir.Value, error) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		wider := ""
		if text[0] != '-' {
			if _, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64); err == nil {
				wider = ir.U64Type.Suffix()
			}
		}
		return nil, outOfRange(tok, text, t, wider)
	}
	v, err := ir.FromInt(i, t)
	if err != nil {
		return nil, outOfRange(tok, text, t, widerSigned(i, t))
	}
	return v, nil
}

func unsigned(tok *token.Token, text string, t ir.Type) (*ir.Value, error) {
	if text[0] == '-' {
		if strings.Trim(text, "-0") == "" {
			return ir.FromUint(0, t)
		}
		return nil, diag.New(diag.IntOutOfRange, tok.Pos, "negative %s with unsigned suffix %s", text, t.Suffix()).
			Suggest("did you mean the signed width i%d?", t.Bits())
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	if err != nil {
		return nil, outOfRange(tok, text, t, "")
	}
	v, err := ir.FromUint(u, t)
	if err != nil {
		return nil, outOfRange(tok, text, t, widerUnsigned(u, t))
	}
	return v, nil
}

func outOfRange(tok *token.Token, text string, t ir.Type, wider string) error {
	d := diag.New(diag.IntOutOfRange, tok.Pos, "%s does not fit %s", text, t.Suffix())
	if wider != "" {
		return d.Suggest("did you mean a wider integer width such as %s?", wider)
	}
	return d.Suggest("the value does not fit any integer width; use f64")
}

func widerSigned(i int64, t ir.Type) string {
	for w := t + 1; w <= ir.I64Type; w++ {
		if _, err := ir.FromInt(i, w); err == nil {
			return w.Suffix()
		}
	}
	return ""
}

func widerUnsigned(u uint64, t ir.Type) string {
	for w := t + 1; w <= ir.U64Type; w++ {
		if _, err := ir.FromUint(u, w); err == nil {
			return w.Suffix()
		}
	}
	return ""
}

func float(tok *token.Token, text string, t ir.Type) (*ir.Value, error) {
	f, err := strconv.ParseFloat(text, t.Bits())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			d := diag.New(diag.InvalidSyntax, tok.Pos, "%s overflows %s", text, t.Suffix())
			if t == ir.F32Type {
				return nil, d.Suggest("use f64")
			}
			return nil, d.Suggest("use inf for an infinite value")
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, diag.New(diag.InvalidSyntax, tok.Pos, "malformed number %s", text)
		}
	}
	return ir.FromFloat(f, t)
}

// str resolves a string token, applying a declared "sN" bound or the
// MaxStringLen option.
func (p *parser) str(tok *token.Token) (*ir.Value, error) {
	n := utf8.RuneCountInString(tok.Text)
	if tok.Suffix == "" {
		if limit := p.opts.maxStringLen; limit > 0 && n > limit {
			return nil, diag.New(diag.StringTooLong, tok.Pos, "string of length %d exceeds the limit of %d", n, limit).
				Suggest("shorten the string")
		}
		return ir.FromString(tok.Text), nil
	}
	if _, ok := ir.SuffixType(tok.Suffix); ok {
		return nil, diag.New(diag.TypeMismatch, tok.Pos, "numeric suffix %q on a string", tok.Suffix).
			Suggest("remove the quotes to write a number")
	}
	if tok.Suffix[0] != 's' || !isBound(tok.Suffix) {
		return nil, diag.New(diag.InvalidTypeHint, tok.Pos, "unknown string suffix %q", tok.Suffix).
			Suggest("bound a string with sN, as in \"abc\"s8")
	}
	bound, err := strconv.Atoi(tok.Suffix[1:])
	if err != nil || bound < 1 {
		return nil, diag.New(diag.InvalidTypeHint, tok.Pos, "bad string bound %q", tok.Suffix).
			Suggest("a bound is a positive number of characters")
	}
	if n > bound {
		return nil, diag.New(diag.StringTooLong, tok.Pos, "string of length %d exceeds its bound %d", n, bound).
			Suggest("raise the bound to s%d or shorten the string", n)
	}
	return ir.FromBoundedString(tok.Text, bound)
}
