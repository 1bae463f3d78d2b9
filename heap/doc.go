// Package heap implements the tenured region of a segmented, non-moving
// mark-and-sweep memory manager: segment bookkeeping, size-class allocation,
// and the sweep phase that reclaims memory after a mark cycle.
//
// # Overview
//
// Memory is organized into fixed-size segments (32 KiB, carved from an
// arena), each subdivided into equal-size blocks of one size class. A
// segment carries a per-block mark bitmap (one byte per block, nonzero =
// live), a next-free cursor for bump allocation, a snapshot of that cursor
// taken at the start of the most recent mark cycle, and an intrusive link
// used by every list the segment can belong to.
//
// Each size class owns two intrusive lists:
//
//   - active: segments with both live and free blocks (allocation targets)
//   - filled: segments with no free blocks
//
// The Heap additionally owns a global free list of fully-reclaimed segments
// (reusable by any size class) and a transient sweep list that stages
// segments during a sweep pass.
//
// # Sweep
//
// Sweep runs once per mark-and-sweep cycle, after the external mark phase
// has populated the bitmaps. It drains every class's filled list into the
// sweep list, then classifies each staged segment with a single ascending
// bitmap scan:
//
//   - no live block  → the segment moves to the global free list
//   - live and free  → the segment moves to its class's active list, with
//     both cursors set to the lowest free block index
//   - no free block  → the segment returns to its class's filled list
//
// The scan exits early once one live and one free block have been seen.
// Segments that were on an active list before the pass are not swept: a
// segment with known-free blocks remains a valid allocation target no matter
// how many additional blocks died, so its destination list cannot change.
//
// # Diagnostics
//
// With Config.SanityScrub enabled, sweep zeroes reclaimed memory: the whole
// payload of a freed segment, and every dead block of a partial segment.
// This surfaces use-after-free and stale-pointer bugs early and is skipped
// entirely in normal operation.
//
// # Error Handling
//
// Resource exhaustion (arena full, oversized request) is reported through
// sentinel errors from Alloc. Violations of heap invariants (a sweep pass
// started while the previous one is unfinished, a free segment with a stale
// cursor) panic immediately with a diagnostic message: they indicate a
// corrupted heap that cannot be safely used.
//
// # Thread Safety
//
// The Heap is not thread-safe. It assumes exclusive access to its segment
// lists: sweep runs either during a stop-the-world pause or in a phase
// where neither the allocator nor the marker touches the lists. No locking
// is performed on this basis; relaxing the assumption requires revisiting
// every list splice and push.
package heap
