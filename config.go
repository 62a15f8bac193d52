package linkedlist

import "github.com/metailurini/linkedlist/alloc"

// Config holds construction settings for a List.
type Config struct {
	// allocator overrides the process-wide hooks when set.
	allocator alloc.Allocator[Node]
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{}
}

// WithAllocator binds the list to a, instead of the process-wide hooks.
func WithAllocator(a alloc.Allocator[Node]) Option {
	return func(c *Config) { c.allocator = a }
}
