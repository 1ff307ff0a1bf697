package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/token"
)

type EncState struct {
	depth, indent int
	mini          bool
	strip         bool
	comments      *ir.Comments

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w. Without options the output is compact.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		mini:   true,
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if v == nil {
		return diag.New(diag.NullArgument, diag.Pos{}, "encode of nil value")
	}
	if es.mini {
		return encode(v, "", w, es)
	}
	if err := writeComments(w, es, es.leading("")); err != nil {
		return err
	}
	if err := encode(v, "", w, es); err != nil {
		return err
	}
	if footer := es.footer(); len(footer) != 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeComments(w, es, footer); err != nil {
			return err
		}
		return nil
	}
	return writeString(w, "\n")
}

func (es *EncState) emitComments() bool {
	return !es.mini && !es.strip && es.comments != nil
}

func (es *EncState) leading(path string) []string {
	if !es.emitComments() {
		return nil
	}
	return es.comments.LeadingAt(path)
}

func (es *EncState) trailing(path string) []string {
	if !es.emitComments() {
		return nil
	}
	return es.comments.TrailingAt(path)
}

func (es *EncState) footer() []string {
	if !es.emitComments() {
		return nil
	}
	return es.comments.Footer
}

func encode(v *ir.Value, path string, w io.Writer, es *EncState) error {
	switch v.Type() {
	case ir.ObjectType:
		return encodeObject(v, path, w, es)
	case ir.ArrayType:
		return encodeArray(v, path, w, es)
	default:
		return writeColored(w, es, v.Type(), ValueColor, Scalar(v))
	}
}

func encodeObject(v *ir.Value, path string, w io.Writer, es *EncState) error {
	trailer := es.trailing(path)
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	if v.NumFields() == 0 && len(trailer) == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "}")
	}
	es.depth++
	i := 0
	for k, child := range v.Fields() {
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		i++
		childPath := ir.FieldPath(path, k)
		if err := writeItemStart(w, es, childPath); err != nil {
			return err
		}
		key := token.Quote(k)
		if !es.mini {
			key = Key(k)
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, key); err != nil {
			return err
		}
		sep := ":"
		if !es.mini {
			sep = ": "
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, sep); err != nil {
			return err
		}
		if err := encode(child, childPath, w, es); err != nil {
			return err
		}
	}
	return writeContainerEnd(w, es, ir.ObjectType, trailer, "}")
}

func encodeArray(v *ir.Value, path string, w io.Writer, es *EncState) error {
	trailer := es.trailing(path)
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	if v.Len() == 0 && len(trailer) == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "]")
	}
	es.depth++
	for i, child := range v.Elems() {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		childPath := ir.IndexPath(path, i)
		if err := writeItemStart(w, es, childPath); err != nil {
			return err
		}
		if err := encode(child, childPath, w, es); err != nil {
			return err
		}
	}
	return writeContainerEnd(w, es, ir.ArrayType, trailer, "]")
}

// writeItemStart puts a field or element on its own line, after its
// leading comments.
func writeItemStart(w io.Writer, es *EncState, path string) error {
	if es.mini {
		return nil
	}
	for _, ln := range es.leading(path) {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeComment(w, es, ln); err != nil {
			return err
		}
	}
	return writeNL(w, es)
}

func writeContainerEnd(w io.Writer, es *EncState, t ir.Type, trailer []string, closer string) error {
	for _, ln := range trailer {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeComment(w, es, ln); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, t, SepColor, closer)
}

// writeComments writes whole comment lines at the current depth, each
// followed by a newline.
func writeComments(w io.Writer, es *EncState, lines []string) error {
	indent := strings.Repeat(" ", es.indent*es.depth)
	for _, ln := range lines {
		if err := writeString(w, indent); err != nil {
			return err
		}
		if err := writeComment(w, es, ln); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeComment(w io.Writer, es *EncState, text string) error {
	s := "#"
	if text != "" {
		s += " " + text
	}
	return writeColored(w, es, ir.NullType, CommentColor, s)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.mini {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color == nil || es.mini {
		return writeString(w, s)
	}
	return writeString(w, es.Color(t, a, s))
}

// Key renders an object key as pretty output does: bare when it is a
// plain identifier. Compact output always quotes keys.
func Key(k string) string {
	if token.NeedsQuote(k) {
		return token.Quote(k)
	}
	return k
}

// Scalar renders a leaf value as it appears in GBLN text. For containers
// it returns "{...}" or "[...]".
func Scalar(v *ir.Value) string {
	t := v.Type()
	switch {
	case t.IsSigned():
		x, _ := v.AsInt()
		s := strconv.FormatInt(x, 10)
		if t != ir.I64Type {
			s += t.Suffix()
		}
		return s
	case t.IsUnsigned():
		x, _ := v.AsUint()
		s := strconv.FormatUint(x, 10)
		if t != ir.U64Type || x <= math.MaxInt64 {
			s += t.Suffix()
		}
		return s
	case t.IsFloat():
		x, _ := v.AsFloat()
		s := formatFloat(x, t.Bits())
		if t == ir.F32Type {
			s += t.Suffix()
		}
		return s
	}
	switch t {
	case ir.StrType:
		s, _ := v.AsString()
		res := token.Quote(s)
		if n, _ := v.StrBound(); n > 0 {
			res += "s" + strconv.Itoa(n)
		}
		return res
	case ir.BoolType:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case ir.NullType:
		return "null"
	case ir.ObjectType:
		return "{...}"
	case ir.ArrayType:
		return "[...]"
	}
	return ""
}

func formatFloat(x float64, bits int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(x, 'g', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
