package heap

import (
	"log/slog"

	"github.com/joshuapare/heapkit/internal/arena"
	"github.com/joshuapare/heapkit/internal/format"
)

// sizeClassAlloc is the per-size-class allocator record: two intrusive
// segment lists and the class's block size. One instance per size class,
// owned exclusively by the Heap; never deleted, only emptied and refilled.
type sizeClassAlloc struct {
	blockSizeLog2 uint8

	// active holds segments with both live and free blocks.
	active segmentList

	// filled holds segments with no free blocks.
	filled segmentList
}

// Heap is the process-wide registry: all size-class allocators, the global
// free list of reusable empty segments, and the transient sweep list. It is
// constructed explicitly at collector startup and mutated only under the
// single-writer discipline described in the package documentation.
type Heap struct {
	allocators [format.AllocatorCount]sizeClassAlloc

	// free holds fully-reclaimed segments, not tied to a size class;
	// a segment is reassigned to a class when allocation reuses it.
	free segmentList

	// sweepList stages segments awaiting classification. Empty except
	// during an active sweep pass; checked at pass entry.
	sweepList segmentList

	arena  *arena.Arena
	scrub  bool
	log    *slog.Logger
	stats  HeapStats
	closed bool
}

// HeapStats holds counters populated by the allocation and sweep paths.
type HeapStats struct {
	AllocCalls        int // Total Alloc() calls
	SegmentsCreated   int // Segments carved from the arena
	FreeSegmentReuses int // Segments recycled off the global free list
	SweepPasses       int // Completed sweep passes
	SweptFree         int // Segments classified free across all passes
	SweptPartial      int // Segments classified partial across all passes
	SweptFilled       int // Segments classified filled across all passes
}

// New constructs a heap. A nil config selects DefaultConfig.
func New(cfg *Config) (*Heap, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	a, err := arena.New(cfg.MaxSegments)
	if err != nil {
		return nil, err
	}
	h := &Heap{
		arena: a,
		scrub: cfg.SanityScrub,
		log:   cfg.Logger,
	}
	for i := range h.allocators {
		h.allocators[i].blockSizeLog2 = format.ClassBlockSizeLog2(i)
	}
	return h, nil
}

// Close releases the heap's memory. All refs handed out by Alloc become
// invalid. Close is idempotent.
func (h *Heap) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.arena.Close()
}

// Stats returns a copy of the heap's counters.
func (h *Heap) Stats() HeapStats {
	return h.stats
}

// NumClasses returns the number of size classes.
func (h *Heap) NumClasses() int {
	return len(h.allocators)
}

// ClassBlockSize returns the block size in bytes of the given size class.
func (h *Heap) ClassBlockSize(class int) int {
	return format.BlockSize(h.allocators[class].blockSizeLog2)
}

// FreeSegments returns the length of the global free list.
func (h *Heap) FreeSegments() int {
	return h.free.len()
}

// ActiveSegments returns the length of the given class's active list.
func (h *Heap) ActiveSegments(class int) int {
	return h.allocators[class].active.len()
}

// FilledSegments returns the length of the given class's filled list.
func (h *Heap) FilledSegments(class int) int {
	return h.allocators[class].filled.len()
}

// classFor returns the allocator owning a segment, derived from its block
// size.
func (h *Heap) classFor(seg *Segment) *sizeClassAlloc {
	return &h.allocators[int(seg.blockSizeLog2)-format.BlockMinLog2]
}
