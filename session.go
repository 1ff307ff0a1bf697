package gbln

import (
	"github.com/gbln-format/go-gbln/config"
	"github.com/gbln-format/go-gbln/diag"
	"github.com/gbln-format/go-gbln/ir"
	"github.com/gbln-format/go-gbln/parse"
)

// Session is a boundary for hosts that read failures from a "last error"
// channel instead of from return values, such as bindings for other
// languages. Each method records its failure in the session, and clears
// the record when it succeeds, so a stale failure is never reported for a
// later call. A Session is safe for concurrent use but concurrent callers
// see each other's failures; give each thread of control its own.
type Session struct {
	slot diag.Slot
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Parse(src string, opts ...parse.ParseOption) (*ir.Value, error) {
	v, err := Parse(src, opts...)
	return v, s.slot.Record(err)
}

func (s *Session) ToString(v *ir.Value) (string, error) {
	res, err := ToString(v)
	return res, s.slot.Record(err)
}

func (s *Session) ToStringPretty(v *ir.Value) (string, error) {
	res, err := ToStringPretty(v)
	return res, s.slot.Record(err)
}

func (s *Session) Serialize(v *ir.Value, cfg config.Config) (string, error) {
	res, err := Serialize(v, cfg)
	return res, s.slot.Record(err)
}

func (s *Session) WriteIO(v *ir.Value, path string, cfg *config.Config) (string, error) {
	res, err := WriteIO(v, path, cfg)
	return res, s.slot.Record(err)
}

func (s *Session) ReadIO(path string) (*ir.Value, error) {
	v, err := ReadIO(path)
	return v, s.slot.Record(err)
}

// Insert adds child to obj under key. On failure child is returned to
// the caller unowned, as in ir.Value.Insert.
func (s *Session) Insert(obj *ir.Value, key string, child *ir.Value) error {
	return s.slot.Record(obj.Insert(key, child))
}

func (s *Session) Push(arr, child *ir.Value) error {
	return s.slot.Record(arr.Push(child))
}

func (s *Session) BoundedString(v string, max int) (*ir.Value, error) {
	res, err := ir.FromBoundedString(v, max)
	return res, s.slot.Record(err)
}

func (s *Session) NewConfig(mini, compress bool, level uint8, indent int, strip bool) (config.Config, error) {
	c, err := config.New(mini, compress, level, indent, strip)
	return c, s.slot.Record(err)
}

// LastErrorMessage returns the text of the pending failure, if any.
func (s *Session) LastErrorMessage() (string, bool) {
	return s.slot.LastMessage()
}

// LastErrorSuggestion returns the suggestion of the pending failure, if
// it has one.
func (s *Session) LastErrorSuggestion() (string, bool) {
	return s.slot.LastSuggestion()
}

// LastError returns the pending failure without clearing it.
func (s *Session) LastError() *diag.Diagnostic {
	return s.slot.Last()
}

// TakeError returns the pending failure and clears it.
func (s *Session) TakeError() *diag.Diagnostic {
	return s.slot.Take()
}
