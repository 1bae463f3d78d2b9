package heap

// segmentList is an intrusive singly-linked list of segments, threaded
// through each segment's link field. Push and pop work on the front only:
// O(1), no allocation, no ordering guarantee among members.
type segmentList struct {
	head *Segment
	n    int
}

// push makes s the new head. s must not be on any list.
func (l *segmentList) push(s *Segment) {
	s.link = l.head
	l.head = s
	l.n++
}

// pop removes and returns the head, or nil when the list is empty.
func (l *segmentList) pop() *Segment {
	s := l.head
	if s == nil {
		return nil
	}
	l.head = s.link
	s.link = nil
	l.n--
	return s
}

// drain takes ownership of the whole chain, leaving the list empty. The
// returned head keeps its link pointers intact.
func (l *segmentList) drain() *Segment {
	head := l.head
	l.head = nil
	l.n = 0
	return head
}

// spliceFront links an externally-held chain onto the front of the list,
// preserving the chain's relative order.
func (l *segmentList) spliceFront(head *Segment) {
	if head == nil {
		return
	}
	tail, n := head, 1
	for tail.link != nil {
		tail = tail.link
		n++
	}
	tail.link = l.head
	l.head = head
	l.n += n
}

func (l *segmentList) empty() bool {
	return l.head == nil
}

func (l *segmentList) len() int {
	return l.n
}
