package graph

const defaultSeed = uint64(0xdeadbeefcafebabe)

// RNG is a xorshift64* generator. Equal seeds yield equal sequences.
type RNG struct {
	state uint64
}

// NewRNG returns a generator seeded with seed. A zero seed is replaced, as
// xorshift never leaves the zero state.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

func (r *RNG) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 2685821657736338717
}

// Intn returns a value in [0, n). n must be positive.
func (r *RNG) Intn(n int) int {
	return int(r.Uint64() % uint64(n))
}

// Random returns a graph of order nodes and edges random edges.
func Random(order, edges int, seed uint64) *Graph {
	g := New(order)
	if order == 0 {
		return g
	}
	r := NewRNG(seed)
	for range edges {
		// Both ends are below order, so AddEdge cannot fail.
		_ = g.AddEdge(uint32(r.Intn(order)), uint32(r.Intn(order)))
	}
	return g
}
