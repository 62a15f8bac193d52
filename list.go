// Package linkedlist implements a singly linked list of uint32 values with
// index-addressed insert, remove and lookup. Every node is acquired from and
// returned to an alloc.Allocator, either bound per list with WithAllocator
// or shared process-wide through RegisterAlloc and RegisterFree.
//
// A List is not safe for concurrent use.
package linkedlist

import (
	"errors"
	"math"

	"github.com/metailurini/linkedlist/alloc"
)

// NotFound is returned by Find when no node carries the value.
const NotFound = math.MaxInt

// ErrHooksNotRegistered is returned by New when no allocator was supplied
// and the process-wide hooks are not installed.
var ErrHooksNotRegistered = errors.New("linkedlist: allocation hooks not registered")

// List is a singly linked list. Indices are zero-based and dense.
type List struct {
	head  *Node
	size  int
	alloc alloc.Allocator[Node]
}

// New returns an empty List.
func New(opts ...Option) (*List, error) {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := cfg.allocator
	if a == nil {
		if !hooks.Registered() {
			return nil, ErrHooksNotRegistered
		}
		a = hooks
	}

	return &List{alloc: a}, nil
}

// Size returns the number of nodes in the list.
func (l *List) Size() int {
	return l.size
}

// Insert places data so that it becomes the element at index. index may be
// Size(), which appends. It returns false, leaving the list unchanged, when
// index is out of range or the node cannot be allocated.
func (l *List) Insert(index int, data uint32) bool {
	if index < 0 || index > l.size {
		return false
	}

	if l.isEmpty() {
		return l.insertIntoEmpty(data)
	}

	if index == 0 {
		return l.InsertFront(data)
	}

	prev := l.nodeAt(index - 1)
	n := l.createNode(data, prev.next)
	if n == nil {
		return false
	}
	prev.next = n

	return true
}

// InsertFront places data at index 0.
func (l *List) InsertFront(data uint32) bool {
	if l.isEmpty() {
		return l.insertIntoEmpty(data)
	}

	n := l.createNode(data, l.head)
	if n == nil {
		return false
	}
	l.head = n
	return true
}

// InsertEnd appends data after the last node.
func (l *List) InsertEnd(data uint32) bool {
	if l.isEmpty() {
		return l.insertIntoEmpty(data)
	}

	last := l.last()
	n := l.createNode(data, nil)
	if n == nil {
		return false
	}
	last.next = n

	return true
}

// Find returns the lowest index holding data, or NotFound.
func (l *List) Find(data uint32) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.data == data {
			return i
		}
		i++
	}
	return NotFound
}

// Remove unlinks and releases the node at index. It returns false, leaving
// the list unchanged, when the list is empty or index is out of range.
func (l *List) Remove(index int) bool {
	if l.isEmpty() || index < 0 || index >= l.size {
		return false
	}

	if index == 0 {
		l.removeHead()
		return true
	}

	prev := l.nodeAt(index - 1)
	victim := prev.next
	prev.next = victim.next

	l.size--
	l.release(victim)

	return true
}

// At returns a live reference to the payload at index. index must be in
// [0, Size()); it is not checked.
func (l *List) At(index int) *uint32 {
	return &l.nodeAt(index).data
}

// Get returns the payload at index. index must be in [0, Size()); it is not
// checked.
func (l *List) Get(index int) uint32 {
	return l.nodeAt(index).data
}

// Lookup returns the payload at index. The boolean is false when index is
// out of range.
func (l *List) Lookup(index int) (uint32, bool) {
	if index < 0 || index >= l.size {
		return 0, false
	}
	return l.nodeAt(index).data, true
}

// Front returns the payload at index 0. The boolean is false when the list
// is empty.
func (l *List) Front() (uint32, bool) {
	if l.isEmpty() {
		return 0, false
	}
	return l.head.data, true
}

// RemoveFront releases the node at index 0. It returns false when the list
// is empty.
func (l *List) RemoveFront() bool {
	if l.isEmpty() {
		return false
	}
	l.removeHead()
	return true
}

// Clear releases every node, head to tail, and leaves the list empty and
// usable.
func (l *List) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		l.release(n)
		n = next
	}
	l.head = nil
	l.size = 0
}

// ToSlice returns the payloads in index order.
func (l *List) ToSlice() []uint32 {
	out := make([]uint32, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}

func (l *List) isEmpty() bool {
	if (l.head == nil) != (l.size == 0) {
		panic("linkedlist: head and size disagree")
	}
	return l.head == nil
}

// createNode allocates a node linked to next and counts it. It returns nil,
// without counting, when allocation fails.
func (l *List) createNode(data uint32, next *Node) *Node {
	n := l.alloc.Alloc()
	if n == nil {
		return nil
	}
	n.data = data
	n.next = next
	l.size++
	return n
}

// insertIntoEmpty is the only path that sets head on an empty list.
func (l *List) insertIntoEmpty(data uint32) bool {
	n := l.createNode(data, nil)
	if n == nil {
		return false
	}
	l.head = n
	return true
}

// removeHead assumes the list is not empty.
func (l *List) removeHead() {
	old := l.head
	l.head = old.next
	l.size--
	l.release(old)
}

func (l *List) release(n *Node) {
	n.next = nil
	l.alloc.Free(n)
}
