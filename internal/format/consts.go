// Package format houses the fixed memory-layout configuration of the
// segmented heap: segment geometry, block size classes, and the helpers that
// derive per-class block counts. The values are configuration handed down by
// the surrounding block allocator; nothing in this module re-derives them at
// runtime, and higher-level packages treat them as compile-time constants.
package format

const (
	// SegmentBits is the log2 of a segment's total size. Segments are
	// 2^SegmentBits bytes long and aligned to their own size.
	SegmentBits = 15

	// SegmentSize is the size of every segment in bytes (32 KiB).
	SegmentSize = 1 << SegmentBits

	// BlockMinLog2 is the log2 of the smallest supported block size.
	// The smallest size class allocates 8-byte blocks.
	BlockMinLog2 = 3

	// BlockMaxLog2 is the log2 of the largest supported block size (16 KiB,
	// half a segment).
	BlockMaxLog2 = SegmentBits - 1

	// AllocatorCount is the number of discrete size classes. Class i
	// allocates blocks of 2^(BlockMinLog2+i) bytes.
	AllocatorCount = BlockMaxLog2 - BlockMinLog2 + 1
)

// BlockSize returns the block size in bytes for the given log2 block size.
func BlockSize(log2 uint8) int {
	return 1 << log2
}

// BlockCount returns the number of allocatable blocks in a segment whose
// blocks are 2^log2 bytes. Each block is accompanied by one mark byte in the
// segment header, so the divisor is blockSize+1 and the result rounds down.
func BlockCount(log2 uint8) int {
	return SegmentSize / (BlockSize(log2) + 1)
}

// ClassBlockSizeLog2 returns the log2 block size for a size class index.
func ClassBlockSizeLog2(class int) uint8 {
	return uint8(BlockMinLog2 + class) //nolint:gosec // class < AllocatorCount
}
