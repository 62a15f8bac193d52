// Package graph runs breadth-first searches over directed graphs through
// the queue package, with every queue and node allocation counted, to
// measure how much of a search is spent in the allocator.
package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeOutOfRange is returned when an edge names a node the graph
	// cannot hold.
	ErrNodeOutOfRange = errors.New("graph: node out of range")
	// ErrQueueFull is returned when the search queue cannot grow.
	ErrQueueFull = errors.New("graph: queue push failed")
)

// Graph is a directed graph over node ids [0, Order()) stored as adjacency
// rows. Rows are nil for nodes without outgoing edges.
type Graph struct {
	rows  [][]uint32
	edges int
}

// New returns a graph able to hold order nodes.
func New(order int) *Graph {
	return &Graph{rows: make([][]uint32, order)}
}

// AddEdge records that node i links to node j.
func (g *Graph) AddEdge(i, j uint32) error {
	if int(i) >= len(g.rows) || int(j) >= len(g.rows) {
		return fmt.Errorf("%w: %d -> %d, order %d", ErrNodeOutOfRange, i, j, len(g.rows))
	}
	g.rows[i] = append(g.rows[i], j)
	g.edges++
	return nil
}

// Neighbors returns the nodes i links to.
func (g *Graph) Neighbors(i uint32) []uint32 {
	if int(i) >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// Order returns the number of node ids.
func (g *Graph) Order() int {
	return len(g.rows)
}

// Edges returns the number of recorded edges.
func (g *Graph) Edges() int {
	return g.edges
}
