package heap

// The mark phase itself (graph traversal, gray/black coloring) lives
// outside this package. The heap exposes only the state the marker consumes
// and produces: cursor snapshots and per-block mark bytes.

// BeginMark starts a mark cycle: every segment on an active or filled list
// has its cursor snapshotted and its bitmap cleared. From this point until
// Sweep returns, the external marker records reachable blocks with Mark;
// no allocation or sweeping may be interleaved with it.
//
// Segments on the global free list hold no live data and are skipped.
func (h *Heap) BeginMark() {
	for i := range h.allocators {
		ca := &h.allocators[i]
		for seg := ca.active.head; seg != nil; seg = seg.link {
			seg.snapshot()
		}
		for seg := ca.filled.head; seg != nil; seg = seg.link {
			seg.snapshot()
		}
	}
}

// Mark records the block as reachable.
func (h *Heap) Mark(r Ref) {
	r.seg.SetMark(r.idx)
}

// Marked reports whether the block has been recorded as reachable in the
// current cycle.
func (h *Heap) Marked(r Ref) bool {
	return r.seg.Marked(r.idx)
}
