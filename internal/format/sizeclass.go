package format

import "math/bits"

// ClassForSize returns the index of the smallest size class whose blocks can
// hold n bytes. ok is false when n is larger than the largest supported block
// size; such requests belong to a large-object path outside this heap.
func ClassForSize(n int) (class int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	log2 := ceilLog2(n)
	if log2 < BlockMinLog2 {
		log2 = BlockMinLog2
	}
	if log2 > BlockMaxLog2 {
		return 0, false
	}
	return log2 - BlockMinLog2, true
}

// AlignUp returns n rounded up to the next multiple of align.
// align must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// ceilLog2 returns the smallest k such that 2^k >= n, for n >= 1.
func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}
