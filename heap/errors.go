package heap

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpace indicates the arena has no segments left to satisfy an
	// allocation.
	ErrNoSpace = errors.New("heap: out of segment memory")

	// ErrOversize indicates a request larger than the largest block size
	// class. Such objects belong to a large-object allocator, not this heap.
	ErrOversize = errors.New("heap: allocation exceeds largest size class")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("heap: allocation size must be positive")

	// ErrClosed indicates the heap has been closed.
	ErrClosed = errors.New("heap: closed")
)

// fatalf reports an unrecoverable heap-consistency failure. The heap's
// invariants underpin memory safety of the managed program, so there is no
// recovery path: the process must not continue with a corrupted heap.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf("heap: "+format, args...))
}
