package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

func TestListPushPopLIFO(t *testing.T) {
	var l segmentList
	require.True(t, l.empty())
	require.Nil(t, l.pop())

	const n = 5
	segs := make([]*Segment, n)
	for i := range segs {
		segs[i] = newTestSegment(t, format.BlockMinLog2)
		l.push(segs[i])
		require.Equal(t, i+1, l.len())
	}

	// Popping yields the reverse of push order.
	for i := n - 1; i >= 0; i-- {
		s := l.pop()
		require.Same(t, segs[i], s)
		require.Nil(t, s.link, "pop must detach the segment")
	}
	require.True(t, l.empty())
	require.Zero(t, l.len())
}

func TestListDrain(t *testing.T) {
	var l segmentList
	a := newTestSegment(t, format.BlockMinLog2)
	b := newTestSegment(t, format.BlockMinLog2)
	l.push(a)
	l.push(b)

	head := l.drain()
	require.True(t, l.empty())
	require.Zero(t, l.len())

	// The chain keeps its order: b was pushed last, so it heads the chain.
	require.Same(t, b, head)
	require.Same(t, a, head.link)
	require.Nil(t, a.link)

	require.Nil(t, l.drain())
}

func TestListSpliceFront(t *testing.T) {
	// Build the chain a -> b by pushing b then a.
	var src segmentList
	a := newTestSegment(t, format.BlockMinLog2)
	b := newTestSegment(t, format.BlockMinLog2)
	src.push(b)
	src.push(a)

	var dst segmentList
	c := newTestSegment(t, format.BlockMinLog2)
	dst.push(c)

	dst.spliceFront(src.drain())
	require.Equal(t, 3, dst.len())

	// Relative order within the spliced chain is preserved, ahead of the
	// existing members.
	require.Same(t, a, dst.pop())
	require.Same(t, b, dst.pop())
	require.Same(t, c, dst.pop())
}

func TestListSpliceFrontNil(t *testing.T) {
	var l segmentList
	s := newTestSegment(t, format.BlockMinLog2)
	l.push(s)

	l.spliceFront(nil)
	require.Equal(t, 1, l.len())
	require.Same(t, s, l.pop())
}
