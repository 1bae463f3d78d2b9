package heap

import "github.com/joshuapare/heapkit/internal/format"

// Segment is a fixed-size slab subdivided into equal-size blocks of one size
// class, plus the header state the collector needs: a per-block mark bitmap,
// the allocator's next-free cursor and its mark-time snapshot, and the
// intrusive link used by list membership.
//
// A segment belongs to exactly one list at any instant (free, active,
// filled, or sweep). Membership is implicit: no owning-list tag is stored,
// only the pointer chain that currently reaches the segment. Callers must
// not hold a reference to a segment across a re-filing operation.
type Segment struct {
	// link is the intrusive forward pointer shared by every list this
	// segment can belong to.
	link *Segment

	// blockSizeLog2 determines the owning size class.
	blockSizeLog2 uint8

	// nextFree is the index of the first block known to be free. The
	// allocator resumes bump allocation here without rescanning the
	// segment. Equal to BlockCount() when the segment is full.
	nextFree int

	// nextFreeSnap is nextFree as of the start of the most recent mark
	// cycle. The mark phase uses it to distinguish blocks that existed
	// before marking began from blocks allocated during or after it.
	nextFreeSnap int

	// bitmap holds one mark byte per block; nonzero means live. It is a
	// reslice of bitmapBuf sized for the current block count.
	bitmap    []byte
	bitmapBuf []byte

	// data is the segment's payload slab from the arena. Block i occupies
	// data[i*blockSize : (i+1)*blockSize].
	data []byte
}

// newSegment wraps an arena slab as a segment of the given size class.
func newSegment(slab []byte, log2 uint8) *Segment {
	s := &Segment{
		// Sized for the smallest class, which has the most blocks; other
		// classes use a prefix.
		bitmapBuf: make([]byte, format.BlockCount(format.BlockMinLog2)),
		data:      slab,
	}
	s.initClass(log2)
	return s
}

// initClass resets the segment for a (possibly different) size class:
// cursors to zero, all blocks free. Called when a segment is created and
// when one is reused off the global free list.
func (s *Segment) initClass(log2 uint8) {
	s.blockSizeLog2 = log2
	s.bitmap = s.bitmapBuf[:format.BlockCount(log2)]
	clear(s.bitmap)
	s.nextFree = 0
	s.nextFreeSnap = 0
}

// BlockSize returns the size in bytes of each block in the segment.
func (s *Segment) BlockSize() int {
	return format.BlockSize(s.blockSizeLog2)
}

// BlockCount returns the number of blocks in the segment.
func (s *Segment) BlockCount() int {
	return len(s.bitmap)
}

// Block returns the payload slice of block i.
func (s *Segment) Block(i int) []byte {
	bs := s.BlockSize()
	return s.data[i*bs : (i+1)*bs : (i+1)*bs]
}

// Marked reports whether block i's mark byte is set.
func (s *Segment) Marked(i int) bool {
	return s.bitmap[i] != 0
}

// SetMark sets block i's mark byte.
func (s *Segment) SetMark(i int) {
	s.bitmap[i] = 1
}

// ClearMark clears block i's mark byte.
func (s *Segment) ClearMark(i int) {
	s.bitmap[i] = 0
}

// advanceNextFree moves the cursor past the block just claimed to the next
// unmarked block, or to BlockCount when none remains.
func (s *Segment) advanceNextFree() {
	i := s.nextFree + 1
	n := s.BlockCount()
	for i < n && s.bitmap[i] != 0 {
		i++
	}
	s.nextFree = i
}

// full reports whether the segment has no free block left.
func (s *Segment) full() bool {
	return s.nextFree >= s.BlockCount()
}

// snapshot records the cursor for the mark phase and clears every mark
// byte. Blocks allocated before the snapshot are considered dead until the
// marker proves them reachable; blocks allocated after it are marked live
// at allocation time.
func (s *Segment) snapshot() {
	s.nextFreeSnap = s.nextFree
	clear(s.bitmap)
}
