package ir

import (
	"unicode/utf8"

	"github.com/gbln-format/go-gbln/diag"
)

// RejectedError is returned by Insert and Push when the child could not be
// attached. The child is handed back untouched and unowned.
type RejectedError struct {
	Diag  *diag.Diagnostic
	Child *Value
}

func (e *RejectedError) Error() string { return e.Diag.Error() }

func (e *RejectedError) Unwrap() error { return e.Diag }

func reject(child *Value, k diag.Kind, format string, args ...any) *RejectedError {
	return &RejectedError{Diag: diag.New(k, diag.Pos{}, format, args...), Child: child}
}

// Insert adds a field to the object v, moving child into v.
func (v *Value) Insert(key string, child *Value) error {
	if v == nil || child == nil {
		return reject(child, diag.NullArgument, "insert with nil object or child")
	}
	if v.typ != ObjectType {
		return reject(child, diag.TypeMismatch, "insert into %s", v.typ)
	}
	if !utf8.ValidString(key) {
		return reject(child, diag.InvalidSyntax, "key %q is not valid UTF-8", key)
	}
	if _, ok := v.fieldIndex(key); ok {
		return &RejectedError{
			Diag: diag.New(diag.DuplicateKey, diag.Pos{}, "key %q already present", key).
				Suggest("rename or remove one of the %q fields", key),
			Child: child,
		}
	}
	if err := v.canAdopt(child); err != nil {
		return err
	}
	i := len(v.values)
	v.fields = append(v.fields, key)
	v.values = append(v.values, child)
	if v.index != nil {
		v.index[key] = i
	} else if len(v.fields) > indexThreshold {
		v.buildIndex()
	}
	child.parent = v
	child.parentIndex = i
	child.parentField = key
	return nil
}

// Push appends child to the array v, moving child into v.
func (v *Value) Push(child *Value) error {
	if v == nil || child == nil {
		return reject(child, diag.NullArgument, "push with nil array or child")
	}
	if v.typ != ArrayType {
		return reject(child, diag.TypeMismatch, "push onto %s", v.typ)
	}
	if err := v.canAdopt(child); err != nil {
		return err
	}
	child.parent = v
	child.parentIndex = len(v.values)
	v.values = append(v.values, child)
	return nil
}

func (v *Value) canAdopt(child *Value) *RejectedError {
	if child.parent != nil {
		return reject(child, diag.InvalidSyntax, "value at %s is already owned", child.Path()).
			withSuggestion("Clone the value before inserting it")
	}
	for p := v; p != nil; p = p.parent {
		if p == child {
			return reject(child, diag.InvalidSyntax, "inserting a value into its own subtree")
		}
	}
	return nil
}

func (e *RejectedError) withSuggestion(s string) *RejectedError {
	e.Diag.Suggestion = s
	return e
}

// objects with more fields than this get a key index.
const indexThreshold = 8

func (v *Value) buildIndex() {
	v.index = make(map[string]int, len(v.fields))
	for i, k := range v.fields {
		v.index[k] = i
	}
}
