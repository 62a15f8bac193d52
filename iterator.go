package linkedlist

// Iterator provides a forward-only view over the list. Mutating the list
// while iterating invalidates the iterator.
type Iterator struct {
	l       *List
	current *Node
	index   int
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (l *List) Iterator() *Iterator {
	return &Iterator{l: l, index: -1}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Index returns the position of the current element, or -1 when the
// iterator is not valid.
func (it *Iterator) Index() int {
	if it == nil || !it.valid {
		return -1
	}
	return it.index
}

// Value returns the payload at the iterator's current position.
// It should only be called when Valid reports true.
func (it *Iterator) Value() uint32 {
	if it == nil || !it.valid {
		return 0
	}
	return it.current.data
}

// Next advances the iterator and reports whether it moved onto an element.
// If the iterator was not valid prior to the call, it advances to the first
// element.
func (it *Iterator) Next() bool {
	if it == nil || it.l == nil {
		return false
	}

	var next *Node
	if it.valid {
		next = it.current.next
	} else {
		next = it.l.head
		it.index = -1
	}

	if next == nil {
		it.invalidate()
		return false
	}

	it.current = next
	it.index++
	it.valid = true
	return true
}

// Seek positions the iterator at index. It returns false, invalidating the
// iterator, when index is out of range.
func (it *Iterator) Seek(index int) bool {
	if it == nil || it.l == nil {
		return false
	}

	if index < 0 || index >= it.l.size {
		it.invalidate()
		return false
	}

	it.current = it.l.nodeAt(index)
	it.index = index
	it.valid = true
	return true
}

func (it *Iterator) invalidate() {
	it.current = nil
	it.index = -1
	it.valid = false
}
