package arena

import "errors"

var (
	// ErrExhausted indicates the reservation has no unissued segments left.
	ErrExhausted = errors.New("arena: reservation exhausted")

	// ErrClosed indicates the arena has been closed.
	ErrClosed = errors.New("arena: closed")

	// ErrBadSize indicates an invalid reservation size was requested.
	ErrBadSize = errors.New("arena: segment count must be positive")
)
