package graph

// Config holds settings for Search and Run.
type Config struct {
	// pooledNodes recycles queue nodes through alloc.Pool instead of the heap.
	pooledNodes bool

	// warmups is the number of untimed allocator microbenchmark rounds.
	warmups int

	// microIterations is the batch size of the allocator microbenchmark.
	microIterations int

	// maxQueries caps how many queries Run executes; 0 runs them all.
	maxQueries int
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		warmups:         4,
		microIterations: 10000,
		maxQueries:      100,
	}
}

// WithPooledNodes recycles queue nodes between pushes.
func WithPooledNodes(on bool) Option {
	return func(c *Config) { c.pooledNodes = on }
}

// WithWarmups sets the number of untimed microbenchmark rounds.
func WithWarmups(n int) Option {
	return func(c *Config) { c.warmups = n }
}

// WithMicroIterations sets the allocator microbenchmark batch size.
func WithMicroIterations(n int) Option {
	return func(c *Config) { c.microIterations = n }
}

// WithMaxQueries caps the number of queries Run executes; 0 runs them all.
func WithMaxQueries(n int) Option {
	return func(c *Config) { c.maxQueries = n }
}

func buildConfig(opts []Option) Config {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
