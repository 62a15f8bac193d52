// Package alloc provides the allocation capability used by the list and
// queue packages. Every node and queue header is acquired through an
// Allocator, so callers can install instrumented, pooled or
// failure-injecting strategies and observe every allocation performed.
package alloc

// Allocator acquires and releases storage for values of type T.
// Alloc returns nil when storage cannot be acquired.
type Allocator[T any] interface {
	Alloc() *T
	Free(p *T)
}

// Heap allocates from the Go heap. Free is a no-op; the garbage collector
// reclaims released values.
type Heap[T any] struct{}

func (Heap[T]) Alloc() *T { return new(T) }

func (Heap[T]) Free(*T) {}

// Funcs adapts a pair of hook functions to an Allocator.
type Funcs[T any] struct {
	AllocFunc func() *T
	FreeFunc  func(*T)
}

func (f Funcs[T]) Alloc() *T {
	if f.AllocFunc == nil {
		return nil
	}
	return f.AllocFunc()
}

func (f Funcs[T]) Free(p *T) {
	if f.FreeFunc == nil || p == nil {
		return
	}
	f.FreeFunc(p)
}
