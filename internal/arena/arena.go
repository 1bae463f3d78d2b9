// Package arena provides the raw memory that segments are carved from.
//
// An Arena reserves one contiguous region up front and hands it out as
// segment-sized, segment-aligned slabs. On unix platforms the region is an
// anonymous memory mapping; elsewhere a heap-backed slice is used. Slabs are
// never returned individually — the heap recycles empty segments on its own
// free list, and the whole region is released by Close.
//
// An Arena is not safe for concurrent use. The heap mutates it only under
// the same single-writer discipline it applies to its segment lists.
package arena

import "github.com/joshuapare/heapkit/internal/format"

// Arena reserves memory for a fixed number of segments and carves it into
// aligned slabs on demand.
type Arena struct {
	region  []byte // full reservation, including alignment slack
	base    int    // offset of the first segment-aligned byte in region
	next    int    // index of the next unissued segment
	max     int    // total segments in the reservation
	release func() error
}

// New reserves room for maxSegments segments. The reservation is made
// eagerly; Segment never allocates.
func New(maxSegments int) (*Arena, error) {
	if maxSegments <= 0 {
		return nil, ErrBadSize
	}

	// Over-reserve by one segment so the first slab can be aligned to
	// SegmentSize regardless of where the region starts.
	size := (maxSegments + 1) * format.SegmentSize
	region, release, err := reserve(size)
	if err != nil {
		return nil, err
	}

	a := &Arena{
		region:  region,
		max:     maxSegments,
		release: release,
	}
	a.base = alignOffset(region)
	return a, nil
}

// Segment returns the next segment-aligned slab of format.SegmentSize bytes.
// It returns ErrExhausted once maxSegments slabs have been issued and
// ErrClosed after Close.
func (a *Arena) Segment() ([]byte, error) {
	if a.region == nil {
		return nil, ErrClosed
	}
	if a.next >= a.max {
		return nil, ErrExhausted
	}
	off := a.base + a.next*format.SegmentSize
	a.next++
	return a.region[off : off+format.SegmentSize : off+format.SegmentSize], nil
}

// Issued reports how many slabs have been handed out so far.
func (a *Arena) Issued() int {
	return a.next
}

// Cap reports the total number of slabs the reservation can supply.
func (a *Arena) Cap() int {
	return a.max
}

// Close releases the reservation. Slabs issued by Segment must not be used
// afterwards. Close is idempotent.
func (a *Arena) Close() error {
	if a.region == nil {
		return nil
	}
	a.region = nil
	if a.release == nil {
		return nil
	}
	err := a.release()
	a.release = nil
	return err
}
