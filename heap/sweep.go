package heap

// segmentClass is the outcome of classifying a swept segment: which list it
// should be re-filed onto.
type segmentClass uint8

const (
	// segmentFree: no block alive; the segment goes on the global free list.
	segmentFree segmentClass = iota

	// segmentPartial: live and free blocks; the segment goes on its
	// class's active list.
	segmentPartial

	// segmentFilled: every block occupied; the segment goes back on its
	// class's filled list.
	segmentFilled
)

func (c segmentClass) String() string {
	switch c {
	case segmentFree:
		return "free"
	case segmentPartial:
		return "partial"
	case segmentFilled:
		return "filled"
	}
	return "invalid"
}

// Sweep reclaims memory after a completed mark cycle. Every segment on any
// class's filled list is classified by its bitmap and re-filed onto exactly
// one of the global free list, its class's active list, or its class's
// filled list. Segments on active lists are left untouched.
//
// Sweep is invoked exactly once per mark-and-sweep cycle, after marking has
// finished and before allocation from the swept classes resumes. It runs to
// completion: allocator state is transiently inconsistent mid-pass.
func (h *Heap) Sweep() {
	h.prepareSweep()

	var nFree, nPartial, nFilled int
	for {
		seg := h.sweepList.pop()
		if seg == nil {
			break
		}

		switch res := sweepSegment(seg); res {
		case segmentFree:
			h.pushFreeSegment(seg)
			if h.scrub {
				clearSegment(seg)
			}
			nFree++
		case segmentPartial:
			h.pushActiveSegment(seg)
			if h.scrub {
				clearFreeBlocks(seg)
			}
			nPartial++
		case segmentFilled:
			// Every block is live; nothing to scrub.
			h.pushFilledSegment(seg)
			nFilled++
		default:
			fatalf("sweep: impossible classification %d", res)
		}
	}

	h.stats.SweepPasses++
	h.stats.SweptFree += nFree
	h.stats.SweptPartial += nPartial
	h.stats.SweptFilled += nFilled

	if h.log != nil {
		h.log.Debug("sweep pass complete",
			"swept", nFree+nPartial+nFilled,
			"free", nFree,
			"partial", nPartial,
			"filled", nFilled)
	}
}

// prepareSweep stages the pass: every class's filled list is taken over
// wholesale and spliced onto the front of the sweep list. Only segments
// known to be fully occupied before this mark cycle need reclassification;
// active segments keep their mark bits for the allocator to use directly.
func (h *Heap) prepareSweep() {
	if !h.sweepList.empty() {
		fatalf("sweep: sweep list not empty at pass entry (previous pass unfinished?)")
	}
	for i := range h.allocators {
		h.sweepList.spliceFront(h.allocators[i].filled.drain())
	}
}

// sweepSegment determines which list a marked segment belongs on and
// initializes its next-free cursors as appropriate. A single ascending scan
// over the bitmap: the first unset byte fixes the cursors, and the scan
// stops as soon as both a live and a free block have been seen.
func sweepSegment(seg *Segment) segmentClass {
	foundFree := false
	foundLive := false

	n := seg.BlockCount()
	for i := 0; i < n; i++ {
		if seg.bitmap[i] != 0 {
			foundLive = true
		} else if !foundFree {
			foundFree = true
			seg.nextFree = i
			seg.nextFreeSnap = i
		}

		if foundFree && foundLive {
			return segmentPartial
		}
	}

	if foundLive {
		return segmentFilled
	}
	// No block alive. The scan set the cursors at index 0 (the first block
	// is necessarily unset), so anything else means corrupted state.
	if seg.nextFree != 0 || seg.nextFreeSnap != 0 {
		fatalf("sweep: free segment with stale cursor (next_free=%d, snap=%d)",
			seg.nextFree, seg.nextFreeSnap)
	}
	return segmentFree
}

// pushFreeSegment adds a fully-reclaimed segment to the global free list.
// Reassignment to a size class happens at allocation time.
// No policy for returning long-unused free segments to the arena exists;
// the free list grows without bound.
func (h *Heap) pushFreeSegment(seg *Segment) {
	h.free.push(seg)
}

// pushActiveSegment adds a segment to its owning class's active list.
func (h *Heap) pushActiveSegment(seg *Segment) {
	h.classFor(seg).active.push(seg)
}

// pushFilledSegment adds a segment to its owning class's filled list.
func (h *Heap) pushFilledSegment(seg *Segment) {
	h.classFor(seg).filled.push(seg)
}
