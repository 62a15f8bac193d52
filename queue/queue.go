// Package queue implements a FIFO queue of uint32 values composed over a
// linked list. The queue only pushes at the tail, peeks and pops at the
// head; it never uses index-based list operations, so any Backing that
// provides those capabilities can stand in for the default list.
//
// A Queue is not safe for concurrent use.
package queue

import (
	"errors"

	"github.com/emirpasic/gods/containers"

	"github.com/metailurini/linkedlist"
	"github.com/metailurini/linkedlist/alloc"
)

var (
	// ErrHooksNotRegistered is returned by New when no allocator was
	// supplied and the process-wide queue hooks are not installed.
	ErrHooksNotRegistered = errors.New("queue: allocation hooks not registered")
	// ErrAllocFailed is returned by New when the queue itself cannot be
	// allocated.
	ErrAllocFailed = errors.New("queue: allocation failed")
)

// Backing is the list capability a Queue is built on.
type Backing interface {
	InsertEnd(data uint32) bool
	Front() (uint32, bool)
	RemoveFront() bool
	Size() int
	Clear()
}

var _ Backing = (*linkedlist.List)(nil)

var _ containers.Container = (*Queue)(nil)

// Queue is a FIFO queue. Obtain one from New; release it with Close.
type Queue struct {
	list  Backing
	alloc alloc.Allocator[Queue]
}

// New allocates a Queue and its backing list.
func New(opts ...Option) (*Queue, error) {
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

	backing := cfg.backing
	if backing == nil {
		l, err := linkedlist.New(cfg.listOptions...)
		if err != nil {
			return nil, err
		}
		backing = l
	}

	q := a.Alloc()
	if q == nil {
		backing.Clear()
		return nil, ErrAllocFailed
	}
	q.list = backing
	q.alloc = a

	return q, nil
}

// Push appends data at the tail. It returns false when the node cannot be
// allocated.
func (q *Queue) Push(data uint32) bool {
	return q.list.InsertEnd(data)
}

// Pop removes the head element and stores it in out. It returns false,
// leaving out untouched, when the queue is empty.
func (q *Queue) Pop(out *uint32) bool {
	if !q.HasNext() {
		return false
	}

	v, _ := q.list.Front()
	if !q.list.RemoveFront() {
		return false
	}

	*out = v
	return true
}

// HasNext reports whether the queue holds at least one element.
func (q *Queue) HasNext() bool {
	return q.list.Size() > 0
}

// Next stores the head element in out without removing it. It returns
// false, leaving out untouched, when the queue is empty.
func (q *Queue) Next(out *uint32) bool {
	v, ok := q.list.Front()
	if !ok {
		return false
	}
	*out = v
	return true
}

// Size returns the number of queued elements.
func (q *Queue) Size() int {
	return q.list.Size()
}

// Close releases every queued node and then the queue itself. The queue
// must not be used afterwards.
func (q *Queue) Close() {
	q.list.Clear()
	a := q.alloc
	q.list = nil
	q.alloc = nil
	a.Free(q)
}
