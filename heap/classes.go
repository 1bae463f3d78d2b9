package heap

import "github.com/joshuapare/heapkit/internal/format"

// ClassInfo describes one size class of the heap's fixed layout.
type ClassInfo struct {
	Class      int // size class index
	BlockSize  int // bytes per block
	BlockCount int // blocks per segment
}

// Classes returns the fixed size-class table.
func Classes() []ClassInfo {
	out := make([]ClassInfo, format.AllocatorCount)
	for i := range out {
		log2 := format.ClassBlockSizeLog2(i)
		out[i] = ClassInfo{
			Class:      i,
			BlockSize:  format.BlockSize(log2),
			BlockCount: format.BlockCount(log2),
		}
	}
	return out
}

// SegmentSize returns the fixed size in bytes of every segment.
func SegmentSize() int {
	return format.SegmentSize
}
