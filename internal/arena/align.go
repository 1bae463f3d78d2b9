package arena

import (
	"unsafe"

	"github.com/joshuapare/heapkit/internal/format"
)

// alignOffset returns the offset of the first byte of region whose address
// is aligned to format.SegmentSize. The reservation is over-sized by one
// segment, so the offset is always within bounds.
func alignOffset(region []byte) int {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(region)))
	rem := addr & (format.SegmentSize - 1)
	if rem == 0 {
		return 0
	}
	return int(format.SegmentSize - rem)
}
