package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

func TestSegmentAlignment(t *testing.T) {
	a, err := New(4)
	require.NoError(t, err)
	defer a.Close()

	for i := 0; i < 4; i++ {
		slab, segErr := a.Segment()
		require.NoError(t, segErr)
		require.Len(t, slab, format.SegmentSize)

		addr := uintptr(unsafe.Pointer(unsafe.SliceData(slab)))
		require.Zero(t, addr&(format.SegmentSize-1), "slab %d not segment-aligned", i)
	}
}

func TestSegmentsAreDistinct(t *testing.T) {
	a, err := New(2)
	require.NoError(t, err)
	defer a.Close()

	s1, err := a.Segment()
	require.NoError(t, err)
	s2, err := a.Segment()
	require.NoError(t, err)

	s1[0] = 0xAA
	s2[0] = 0xBB
	require.Equal(t, byte(0xAA), s1[0])
	require.Equal(t, byte(0xBB), s2[0])

	// Adjacent slabs must not share bytes.
	s1[len(s1)-1] = 0xCC
	require.Equal(t, byte(0xBB), s2[0])
}

func TestExhaustion(t *testing.T) {
	a, err := New(1)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Segment()
	require.NoError(t, err)
	require.Equal(t, 1, a.Issued())

	_, err = a.Segment()
	require.ErrorIs(t, err, ErrExhausted)
}

func TestClose(t *testing.T) {
	a, err := New(1)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "Close must be idempotent")

	_, err = a.Segment()
	require.ErrorIs(t, err, ErrClosed)
}

func TestBadSize(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = New(-3)
	require.ErrorIs(t, err, ErrBadSize)
}
