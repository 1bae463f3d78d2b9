package heap

import (
	"testing"

	"github.com/joshuapare/heapkit/internal/format"
)

// newTestSegment builds a detached segment of the given size class with a
// heap-backed slab, for tests that exercise classification and scrubbing
// without a full Heap.
func newTestSegment(t testing.TB, log2 uint8) *Segment {
	t.Helper()
	return newSegment(make([]byte, format.SegmentSize), log2)
}

// newBitmapSegment builds a segment whose block count is exactly len(live),
// with the given liveness. Classification looks only at the bitmap and the
// cursors, so no payload is attached.
func newBitmapSegment(t testing.TB, live []bool) *Segment {
	t.Helper()
	seg := &Segment{bitmapBuf: make([]byte, len(live))}
	seg.bitmap = seg.bitmapBuf
	for i, v := range live {
		if v {
			seg.SetMark(i)
		}
	}
	return seg
}

// fillBitmap marks every block of the segment live.
func fillBitmap(t testing.TB, seg *Segment) {
	t.Helper()
	for i := 0; i < seg.BlockCount(); i++ {
		seg.SetMark(i)
	}
}

func newTestHeap(t testing.TB, cfg *Config) *Heap {
	t.Helper()
	if cfg == nil {
		cfg = &Config{MaxSegments: 16}
	}
	h, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}
