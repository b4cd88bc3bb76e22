// Package viewstate holds the small state machines behind the dynamic page
// regions: Idle, Loading, Success, or Error, with a request token so a
// response that arrives after a newer request started is discarded.
package viewstate

import (
	"sync"
)

// Status is the phase of a region.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State is a snapshot of a region.
type State[T any] struct {
	Status  Status
	Data    T      // set when Status is Success
	Err     error  // set when Status is Error
	Message string // user-facing text for Error
}

// Token identifies one request against a Slot.
type Token uint64

// Slot is one region's state. The zero value is Idle and ready to use.
type Slot[T any] struct {
	mu    sync.Mutex
	state State[T]
	token Token
}

// Begin moves the slot to Loading and returns the token the caller must
// present to Finish or Fail. Any earlier outstanding token becomes stale.
func (s *Slot[T]) Begin() Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	s.state = State[T]{Status: Loading}
	return s.token
}

// TryBegin is Begin, except it refuses while a request is already Loading.
func (s *Slot[T]) TryBegin() (Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status == Loading {
		return 0, false
	}
	s.token++
	s.state = State[T]{Status: Loading}
	return s.token, true
}

// Finish records data as the result of tok. It returns false, changing
// nothing, when tok is no longer current.
func (s *Slot[T]) Finish(tok Token, data T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok != s.token {
		return false
	}
	s.state = State[T]{Status: Success, Data: data}
	return true
}

// Fail records err as the result of tok, with msg for display. It returns
// false when tok is no longer current.
func (s *Slot[T]) Fail(tok Token, err error, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok != s.token {
		return false
	}
	s.state = State[T]{Status: Error, Err: err, Message: msg}
	return true
}

// Snapshot returns the current state.
func (s *Slot[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Tracker keeps one Slot per key, created on first use.
type Tracker[K comparable, T any] struct {
	mu    sync.Mutex
	slots map[K]*Slot[T]
}

// NewTracker returns an empty Tracker.
func NewTracker[K comparable, T any]() *Tracker[K, T] {
	return &Tracker[K, T]{slots: make(map[K]*Slot[T])}
}

// Slot returns the slot for k.
func (t *Tracker[K, T]) Slot(k K) *Slot[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.slots[k]
	if !ok {
		s = &Slot[T]{}
		t.slots[k] = s
	}
	return s
}
