package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Pos is a position in the original input. Line and Col are 1-based, Col
// counts code points and Offset counts bytes. The zero Pos means the
// diagnostic is not tied to input text.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Diagnostic is a single failure record.
type Diagnostic struct {
	Kind       Kind
	Pos        Pos
	Message    string
	Suggestion string

	// Err is an optional underlying cause, such as a *fs.PathError.
	Err error
}

// New returns a Diagnostic of kind k at p.
func New(k Kind, p Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    k,
		Pos:     p,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap returns a position-less Diagnostic of kind k caused by err.
func Wrap(k Kind, err error, format string, args ...any) *Diagnostic {
	d := New(k, Pos{}, format, args...)
	d.Err = err
	return d
}

// Suggest sets the remediation suggestion and returns d.
func (d *Diagnostic) Suggest(format string, args ...any) *Diagnostic {
	d.Suggestion = fmt.Sprintf(format, args...)
	return d
}

func (d *Diagnostic) Error() string {
	b := &strings.Builder{}
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	b.WriteString(d.Kind.String())
	if d.Message != "" {
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	if d.Err != nil {
		b.WriteString(": ")
		b.WriteString(d.Err.Error())
	}
	return b.String()
}

func (d *Diagnostic) Unwrap() []error {
	if d.Err == nil {
		return []error{d.Kind}
	}
	return []error{d.Kind, d.Err}
}

// Detail renders d over several lines, including the suggestion.
func (d *Diagnostic) Detail() string {
	if d.Suggestion == "" {
		return d.Error()
	}
	return d.Error() + "\n  hint: " + d.Suggestion
}

// As returns the first Diagnostic in err's chain.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// KindOf returns the kind of the first Diagnostic in err's chain, None for
// a nil error and IoFailure for foreign errors.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	if d, ok := As(err); ok {
		return d.Kind
	}
	return IoFailure
}

// Diagnostics is a list of diagnostics, typically one per input file.
type Diagnostics []*Diagnostic

func (ds *Diagnostics) Add(d *Diagnostic) {
	*ds = append(*ds, d)
}

func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no errors"
	case 1:
		return ds[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more diagnostics)", ds[0], len(ds)-1)
	}
}

// ErrorOrNil returns ds as an error if it is non-empty.
func (ds Diagnostics) ErrorOrNil() error {
	if len(ds) == 0 {
		return nil
	}
	return ds
}
