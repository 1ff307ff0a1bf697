package diff

import (
	"fmt"
	"io"
	"strings"

	"github.com/gbln-format/go-gbln/encode"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/token"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Format writes entries one per line:
//
//   - path: value
//   - path: value
//     ~ path: old -> new
//     ! path: old -> new     (type, width or bound changed)
//
// A string change shows its edits inline as [-removed-]{+inserted+}. With
// colorize set the markers are colored instead.
func Format(w io.Writer, entries []Entry, colorize bool) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, line(e, colorize)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// String renders entries as Format does, without color.
func String(entries []Entry) string {
	buf := &strings.Builder{}
	Format(buf, entries, false)
	return buf.String()
}

func line(e Entry, colorize bool) string {
	path := e.Path
	if path == "" {
		path = "."
	}
	mark := func(c *color.Color, s string) string {
		if !colorize {
			return s
		}
		return c.Sprint(s)
	}
	switch e.Op {
	case Add:
		return mark(addColor, "+ "+path+": "+encode.Compact(e.To))
	case Remove:
		return mark(delColor, "- "+path+": "+encode.Compact(e.From))
	case Retype:
		return mark(retypeColor, "! "+path+": ") + show(e.From) + " -> " + show(e.To)
	}
	if len(e.Diffs) != 0 {
		return "~ " + path + ": " + inline(e.Diffs, colorize)
	}
	return "~ " + path + ": " + show(e.From) + " -> " + show(e.To)
}

var (
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
	retypeColor = color.New(color.FgYellow)
)

func show(v *ir.Value) string {
	if v.Type() == ir.ObjectType || v.Type() == ir.ArrayType {
		return encode.Compact(v)
	}
	return encode.Scalar(v)
}

// inline renders string edits inside one quoted string.
func inline(diffs []diffpatch.Diff, colorize bool) string {
	buf := &strings.Builder{}
	buf.WriteByte('"')
	for _, d := range diffs {
		text := escape(d.Text)
		switch {
		case d.Type == diffpatch.DiffInsert && colorize:
			buf.WriteString(addColor.Sprint(text))
		case d.Type == diffpatch.DiffDelete && colorize:
			buf.WriteString(delColor.Sprint(text))
		case d.Type == diffpatch.DiffInsert:
			fmt.Fprintf(buf, "{+%s+}", text)
		case d.Type == diffpatch.DiffDelete:
			fmt.Fprintf(buf, "[-%s-]", text)
		default:
			buf.WriteString(text)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

func escape(s string) string {
	q := token.Quote(s)
	return q[1 : len(q)-1]
}
