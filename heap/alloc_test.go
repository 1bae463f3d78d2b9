package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

func TestAllocBasic(t *testing.T) {
	h := newTestHeap(t, nil)

	r, buf, err := h.Alloc(100)
	require.NoError(t, err)
	require.True(t, r.Valid())
	require.Len(t, buf, 128, "100 bytes rounds up to the 128-byte class")
	require.True(t, h.Marked(r), "allocation marks the block live")

	class, _ := format.ClassForSize(100)
	require.Equal(t, 1, h.ActiveSegments(class))

	st := h.Stats()
	require.Equal(t, 1, st.AllocCalls)
	require.Equal(t, 1, st.SegmentsCreated)
}

func TestAllocCursorAdvances(t *testing.T) {
	h := newTestHeap(t, nil)

	// Three sequential allocations claim consecutive block indices.
	for want := 0; want < 3; want++ {
		r, _, err := h.Alloc(8)
		require.NoError(t, err)
		require.Equal(t, want, r.idx)
	}
}

func TestAllocSkipsLiveBlocks(t *testing.T) {
	h := newTestHeap(t, nil)

	// bitmap [1,0,1] after a mark cycle: the cursor must land on index 1,
	// then skip 2's live block... there is none beyond, so the segment fills.
	refs := make([]Ref, 3)
	for i := range refs {
		var err error
		refs[i], _, err = h.Alloc(sweepBlockSize)
		require.NoError(t, err)
	}

	h.BeginMark()
	h.Mark(refs[0])
	h.Mark(refs[2])
	h.Sweep()

	r, _, err := h.Alloc(sweepBlockSize)
	require.NoError(t, err)
	require.Equal(t, 1, r.idx)

	class := sweepClassIdx(t)
	require.Zero(t, h.ActiveSegments(class), "claiming the only free block fills the segment")
	require.Equal(t, 1, h.FilledSegments(class))
}

func TestAllocDistinctBlocks(t *testing.T) {
	h := newTestHeap(t, nil)

	_, b1, err := h.Alloc(64)
	require.NoError(t, err)
	_, b2, err := h.Alloc(64)
	require.NoError(t, err)

	for i := range b1 {
		b1[i] = 0x11
	}
	for i := range b2 {
		b2[i] = 0x22
	}
	for i := range b1 {
		require.Equal(t, byte(0x11), b1[i])
	}
}

func TestAllocSizeErrors(t *testing.T) {
	h := newTestHeap(t, nil)

	_, _, err := h.Alloc(0)
	require.ErrorIs(t, err, ErrBadSize)

	_, _, err = h.Alloc(-1)
	require.ErrorIs(t, err, ErrBadSize)

	_, _, err = h.Alloc((1 << format.BlockMaxLog2) + 1)
	require.ErrorIs(t, err, ErrOversize)
}

func TestAllocExhaustion(t *testing.T) {
	h := newTestHeap(t, &Config{MaxSegments: 1})

	// The largest class holds one block per segment, so the single arena
	// segment is consumed by the first allocation.
	_, _, err := h.Alloc(1 << format.BlockMaxLog2)
	require.NoError(t, err)

	_, _, err = h.Alloc(1 << format.BlockMaxLog2)
	require.ErrorIs(t, err, ErrNoSpace)
}

func TestAllocAfterClose(t *testing.T) {
	h := newTestHeap(t, nil)
	require.NoError(t, h.Close())

	_, _, err := h.Alloc(8)
	require.ErrorIs(t, err, ErrClosed)
}

func TestAllocSeparateClasses(t *testing.T) {
	h := newTestHeap(t, nil)

	r8, _, err := h.Alloc(8)
	require.NoError(t, err)
	r16, _, err := h.Alloc(16)
	require.NoError(t, err)

	require.NotSame(t, r8.seg, r16.seg, "classes must not share segments")
	require.Equal(t, 8, r8.seg.BlockSize())
	require.Equal(t, 16, r16.seg.BlockSize())
}
