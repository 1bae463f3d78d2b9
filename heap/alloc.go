package heap

import "github.com/joshuapare/heapkit/internal/format"

// Ref identifies an allocated block: the segment it lives in and its block
// index. Refs are handed out by Alloc and consumed by the mark interface.
// The zero Ref is invalid.
type Ref struct {
	seg *Segment
	idx int
}

// Bytes returns the block's payload slice.
func (r Ref) Bytes() []byte {
	return r.seg.Block(r.idx)
}

// Valid reports whether the ref identifies a block.
func (r Ref) Valid() bool {
	return r.seg != nil
}

// Alloc allocates a block large enough to hold size bytes from the
// appropriate size class. The block's mark byte is set at allocation so the
// cursor-advance scan and a sweep that follows an interleaved mark cycle
// both see it as occupied.
//
// Allocation must not run concurrently with a sweep pass or between
// BeginMark and Sweep; see the package documentation.
func (h *Heap) Alloc(size int) (Ref, []byte, error) {
	if h.closed {
		return Ref{}, nil, ErrClosed
	}
	if size <= 0 {
		return Ref{}, nil, ErrBadSize
	}
	class, ok := format.ClassForSize(size)
	if !ok {
		return Ref{}, nil, ErrOversize
	}
	h.stats.AllocCalls++

	ca := &h.allocators[class]
	seg := ca.active.head
	if seg == nil {
		var err error
		seg, err = h.newActiveSegment(ca)
		if err != nil {
			return Ref{}, nil, err
		}
	}

	idx := seg.nextFree
	seg.SetMark(idx)
	seg.advanceNextFree()

	if seg.full() {
		// The segment has no free block left; move it from the head of
		// the active list to the filled list.
		ca.active.pop()
		ca.filled.push(seg)
	}

	return Ref{seg: seg, idx: idx}, seg.Block(idx), nil
}

// newActiveSegment supplies an allocation target for a class whose active
// list is empty: a recycled segment off the global free list if one exists,
// otherwise a fresh segment carved from the arena.
func (h *Heap) newActiveSegment(ca *sizeClassAlloc) (*Segment, error) {
	if seg := h.free.pop(); seg != nil {
		seg.initClass(ca.blockSizeLog2)
		h.stats.FreeSegmentReuses++
		ca.active.push(seg)
		return seg, nil
	}

	slab, err := h.arena.Segment()
	if err != nil {
		return nil, ErrNoSpace
	}
	seg := newSegment(slab, ca.blockSizeLog2)
	h.stats.SegmentsCreated++
	ca.active.push(seg)
	return seg, nil
}

