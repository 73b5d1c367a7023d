package engine

import "errors"

// ErrNotFound marks lookups for candidates, staff, policies, or events
// that do not exist in the current state.
var ErrNotFound = errors.New("not found")

// ErrRejected marks a mutation the rules refuse: position caps, unknown
// options, choice resolution without a pending event.
var ErrRejected = errors.New("rejected")

// RejectionError carries the player-facing reason for a refused mutation.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

func (e *RejectionError) Is(target error) bool { return target == ErrRejected }

func errRejected(reason string) error {
	return &RejectionError{Reason: reason}
}
