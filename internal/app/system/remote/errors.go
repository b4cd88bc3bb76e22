package remote

import (
	"errors"
	"fmt"
)

// Kind classifies a remote failure so views can pick the right message.
type Kind int

const (
	KindUnknown Kind = iota
	// KindConfigurationUnavailable: no client could be built because the
	// backend URL or key is missing.
	KindConfigurationUnavailable
	// KindQueryFailed: a select or object listing failed.
	KindQueryFailed
	// KindInsertFailed: an insert failed.
	KindInsertFailed
)

func (k Kind) String() string {
	switch k {
	case KindConfigurationUnavailable:
		return "configuration_unavailable"
	case KindQueryFailed:
		return "query_failed"
	case KindInsertFailed:
		return "insert_failed"
	default:
		return "unknown"
	}
}

// ErrConfigurationUnavailable is wrapped by every error a Provider returns
// when the backend is not configured.
var ErrConfigurationUnavailable = errors.New("remote backend is not configured")

// Error is the error type returned by Client implementations.
type Error struct {
	Kind   Kind
	Op     string // select, insert, list, connect
	Target string // table or bucket
	Err    error
}

func (e *Error) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	if errors.Is(err, ErrConfigurationUnavailable) {
		return KindConfigurationUnavailable
	}
	return KindUnknown
}

// IsConfigurationUnavailable reports whether err means the backend is not
// configured.
func IsConfigurationUnavailable(err error) bool {
	return KindOf(err) == KindConfigurationUnavailable
}

func configErr(reason string) error {
	return &Error{
		Kind: KindConfigurationUnavailable,
		Op:   "connect",
		Err:  fmt.Errorf("%w: %s", ErrConfigurationUnavailable, reason),
	}
}

func queryErr(op, target string, err error) error {
	return &Error{Kind: KindQueryFailed, Op: op, Target: target, Err: err}
}

func insertErr(table string, err error) error {
	return &Error{Kind: KindInsertFailed, Op: "insert", Target: table, Err: err}
}
