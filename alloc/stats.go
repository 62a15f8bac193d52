package alloc

import (
	"sync/atomic"
	"unsafe"
)

// Stats counts allocator traffic. One Stats may be shared by several
// Counting allocators, including allocators of different types.
type Stats struct {
	allocs   atomic.Int64
	frees    atomic.Int64
	failures atomic.Int64
	bytes    atomic.Int64
}

func (s *Stats) Allocs() int64 { return s.allocs.Load() }

func (s *Stats) Frees() int64 { return s.frees.Load() }

func (s *Stats) Failures() int64 { return s.failures.Load() }

// Live reports successful allocations not yet released.
func (s *Stats) Live() int64 { return s.allocs.Load() - s.frees.Load() }

// Bytes reports the size of live allocations.
func (s *Stats) Bytes() int64 { return s.bytes.Load() }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.allocs.Store(0)
	s.frees.Store(0)
	s.failures.Store(0)
	s.bytes.Store(0)
}

// Counting records every Alloc and Free of the wrapped allocator in Stats.
type Counting[T any] struct {
	inner Allocator[T]
	stats *Stats
	size  int64
}

// NewCounting wraps inner. A nil stats gets a fresh Stats.
func NewCounting[T any](inner Allocator[T], stats *Stats) *Counting[T] {
	if stats == nil {
		stats = &Stats{}
	}
	var zero T
	return &Counting[T]{
		inner: inner,
		stats: stats,
		size:  int64(unsafe.Sizeof(zero)),
	}
}

// Stats returns the counters this allocator reports to.
func (c *Counting[T]) Stats() *Stats { return c.stats }

func (c *Counting[T]) Alloc() *T {
	p := c.inner.Alloc()
	if p == nil {
		c.stats.failures.Add(1)
		return nil
	}
	c.stats.allocs.Add(1)
	c.stats.bytes.Add(c.size)
	return p
}

func (c *Counting[T]) Free(p *T) {
	if p == nil {
		return
	}
	c.stats.frees.Add(1)
	c.stats.bytes.Add(-c.size)
	c.inner.Free(p)
}
