package diag

import (
	"errors"
	"sync"
)

// Slot holds the most recent failure of a sequence of calls. Each owner
// has its own Slot, safe for concurrent use. A successful call clears it,
// as does Take.
type Slot struct {
	mu   sync.Mutex
	last *Diagnostic
}

// Record stores err as the current failure, or clears the slot if err is
// nil. It returns err unchanged.
func (s *Slot) Record(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.last = nil
		return nil
	}
	d, ok := As(err)
	if !ok {
		d = Wrap(IoFailure, err, "")
	}
	s.last = d
	return err
}

func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
}

// Last returns the current failure without clearing it.
func (s *Slot) Last() *Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Take returns the current failure and clears the slot.
func (s *Slot) Take() *Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.last
	s.last = nil
	return d
}

// LastMessage returns the text of the current failure, if any.
func (s *Slot) LastMessage() (string, bool) {
	d := s.Last()
	if d == nil {
		return "", false
	}
	return d.Error(), true
}

// LastSuggestion returns the suggestion of the current failure, if it has
// one.
func (s *Slot) LastSuggestion() (string, bool) {
	d := s.Last()
	if d == nil || d.Suggestion == "" {
		return "", false
	}
	return d.Suggestion, true
}

// Is reports whether the current failure has kind k.
func (s *Slot) Is(k Kind) bool {
	d := s.Last()
	return d != nil && errors.Is(d, k)
}
