package queue

import (
	"github.com/metailurini/linkedlist"
	"github.com/metailurini/linkedlist/alloc"
)

// Config holds construction settings for a Queue.
type Config struct {
	allocator   alloc.Allocator[Queue]
	backing     Backing
	listOptions []linkedlist.Option
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{}
}

// WithAllocator allocates the queue from a instead of the process-wide
// queue hooks.
func WithAllocator(a alloc.Allocator[Queue]) Option {
	return func(c *Config) { c.allocator = a }
}

// WithListOptions configures the default backing list.
func WithListOptions(opts ...linkedlist.Option) Option {
	return func(c *Config) { c.listOptions = append(c.listOptions, opts...) }
}

// WithBacking uses b instead of a new linked list. The queue takes
// ownership of b; if New fails, b is cleared.
func WithBacking(b Backing) Option {
	return func(c *Config) { c.backing = b }
}
