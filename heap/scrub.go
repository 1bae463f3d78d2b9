package heap

// Diagnostic scrubbing, gated by Config.SanityScrub. Kept separate from
// classification so it can be exercised on its own.

// clearSegment zeroes a freed segment: the whole payload and the bitmap.
// Any later read through a stale pointer observes zeroes instead of the
// previous cycle's data.
func clearSegment(seg *Segment) {
	clear(seg.bitmap)
	clear(seg.data)
}

// clearFreeBlocks zeroes every dead block of a partial segment. After mark,
// an unset byte means dead; live payload is left untouched.
func clearFreeBlocks(seg *Segment) {
	n := seg.BlockCount()
	for i := 0; i < n; i++ {
		if !seg.Marked(i) {
			clear(seg.Block(i))
		}
	}
}
