package linkedlist

// nodeAt walks index links from head. Callers guarantee 0 <= index < size.
func (l *List) nodeAt(index int) *Node {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// last follows links until the final node. The list must not be empty.
func (l *List) last() *Node {
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}
