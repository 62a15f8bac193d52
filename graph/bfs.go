package graph

import (
	"fmt"
	"time"

	"github.com/metailurini/linkedlist"
	"github.com/metailurini/linkedlist/alloc"
	"github.com/metailurini/linkedlist/queue"
)

// Result describes one search.
type Result struct {
	Found bool
	// Visited counts nodes taken off the queue.
	Visited int
	Elapsed time.Duration
	// Allocs and Frees count queue and node allocator calls.
	Allocs int64
	Frees  int64
	// AllocShare and FreeShare estimate the fraction of Elapsed spent in
	// the allocator. Only Run fills them in.
	AllocShare float64
	FreeShare  float64
}

// Search looks for a path of at least one edge from one node to another,
// breadth first.
func Search(g *Graph, from, to uint32, opts ...Option) (Result, error) {
	cfg := buildConfig(opts)
	return search(g, from, to, newNodeAllocator(cfg))
}

func newNodeAllocator(cfg Config) alloc.Allocator[linkedlist.Node] {
	if cfg.pooledNodes {
		return alloc.NewPool[linkedlist.Node]()
	}
	return alloc.Heap[linkedlist.Node]{}
}

func search(g *Graph, from, to uint32, nodeAlloc alloc.Allocator[linkedlist.Node]) (Result, error) {
	if int(from) >= g.Order() {
		return Result{}, fmt.Errorf("%w: start node %d, order %d", ErrNodeOutOfRange, from, g.Order())
	}

	stats := &alloc.Stats{}
	nodes := alloc.NewCounting[linkedlist.Node](nodeAlloc, stats)
	queues := alloc.NewCounting[queue.Queue](alloc.Heap[queue.Queue]{}, stats)

	start := time.Now()

	q, err := queue.New(queue.WithAllocator(queues), queue.WithListOptions(linkedlist.WithAllocator(nodes)))
	if err != nil {
		return Result{}, err
	}

	res, err := walk(g, q, from, to)
	q.Close()

	res.Elapsed = time.Since(start)
	res.Allocs = stats.Allocs()
	res.Frees = stats.Frees()
	return res, err
}

func walk(g *Graph, q *queue.Queue, from, to uint32) (Result, error) {
	var res Result
	visited := make([]bool, g.Order())

	visited[from] = true
	if !q.Push(from) {
		return res, ErrQueueFull
	}

	var next uint32
	for q.Pop(&next) {
		res.Visited++
		for _, adj := range g.Neighbors(next) {
			if adj == to {
				res.Found = true
				return res, nil
			}
			if visited[adj] {
				continue
			}
			visited[adj] = true
			if !q.Push(adj) {
				return res, fmt.Errorf("%w: node %d", ErrQueueFull, adj)
			}
		}
	}

	return res, nil
}
