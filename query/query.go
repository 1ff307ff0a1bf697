package query

import (
	"github.com/gbln-format/go-gbln/convert"
	"github.com/gbln-format/go-gbln/debug"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query is a compiled expression that can run against many documents.
type Query struct {
	src  string
	prg  *vm.Program
	bool bool
}

// Compile compiles an expression over a document.
func Compile(src string) (*Query, error) {
	return compile(src, false)
}

// CompileBool compiles an expression that must yield a bool.
func CompileBool(src string) (*Query, error) {
	return compile(src, true)
}

func compile(src string, asBool bool) (*Query, error) {
	var opts []expr.Option
	if asBool {
		opts = append(opts, expr.AsBool())
	}
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, diag.Wrap(diag.InvalidSyntax, err, "compiling %q", src)
	}
	return &Query{src: src, prg: prg, bool: asBool}, nil
}

func (q *Query) String() string { return q.src }

// Run evaluates q against doc and converts the result back into a value.
func (q *Query) Run(doc *ir.Value) (*ir.Value, error) {
	res, err := q.run(doc)
	if err != nil {
		return nil, err
	}
	v, err := convert.FromAny(res)
	if err != nil {
		return nil, diag.Wrap(diag.TypeMismatch, err, "result of %q", q.src)
	}
	return v, nil
}

// Match evaluates a query compiled with CompileBool.
func (q *Query) Match(doc *ir.Value) (bool, error) {
	res, err := q.run(doc)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, diag.New(diag.TypeMismatch, diag.Pos{}, "%q yields %T, not bool", q.src, res)
	}
	return b, nil
}

func (q *Query) run(doc *ir.Value) (any, error) {
	if doc == nil {
		return nil, diag.New(diag.NullArgument, diag.Pos{}, "query of nil document")
	}
	res, err := expr.Run(q.prg, env(doc))
	if err != nil {
		return nil, diag.Wrap(diag.TypeMismatch, err, "evaluating %q", q.src)
	}
	if debug.Encode() {
		debug.Logf("query", "expr", q.src, "result", res)
	}
	return res, nil
}

// Eval compiles and runs src against doc.
func Eval(doc *ir.Value, src string) (*ir.Value, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(doc)
}

// Bool compiles and runs the predicate src against doc.
func Bool(doc *ir.Value, src string) (bool, error) {
	q, err := CompileBool(src)
	if err != nil {
		return false, err
	}
	return q.Match(doc)
}
