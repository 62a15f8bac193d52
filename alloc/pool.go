package alloc

import "sync"

// Pool recycles released values through a sync.Pool. Values are zeroed on
// release, so Alloc always hands out a zero value.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool[T any]() *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any { return new(T) }
	return p
}

func (p *Pool[T]) Alloc() *T {
	v := p.pool.Get()
	if v == nil {
		// Zero-value Pool without NewPool.
		return new(T)
	}
	return v.(*T)
}

func (p *Pool[T]) Free(v *T) {
	if v == nil {
		return
	}

	var zero T
	*v = zero

	p.pool.Put(v)
}
