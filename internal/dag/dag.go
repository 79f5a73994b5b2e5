// SPDX-License-Identifier: MPL-2.0

// Package dag orders directed acyclic graphs and detects cycles.
// Course prerequisite chains and workflow steps reduce to the same
// problem: an edge from A to B means A comes before B.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError indicates that the graph cannot be ordered because it
	// contains a cycle.
	CycleError struct {
		// Cycle holds nodes caught in the cycle, enough to point at
		// the offending chain.
		Cycle []string
	}

	// Graph is a directed graph over string-keyed nodes. Insertion
	// order is preserved so repeated orderings of the same graph come
	// out identical.
	Graph struct {
		// next maps each node to the nodes that must come after it.
		next map[string][]string
		// nodes lists every node in insertion order.
		nodes []string
		// present provides O(1) membership checks.
		present map[string]bool
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		next:    make(map[string][]string),
		present: make(map[string]bool),
	}
}

// AddNode records a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(name string) {
	if g.present[name] {
		return
	}
	g.present[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge records that from comes before to. Both nodes are added
// implicitly. Duplicate edges are allowed and do not affect the
// resulting order.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.next[from] = append(g.next[from], to)
}

// Order returns the nodes in an order that respects every edge, using
// Kahn's algorithm. Nodes that become ready together keep their
// insertion order. A cyclic graph yields a CycleError.
func (g *Graph) Order() ([]string, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	incoming := make(map[string]int, len(g.nodes))
	for _, node := range g.nodes {
		incoming[node] = 0
	}
	for _, targets := range g.next {
		for _, target := range targets {
			incoming[target]++
		}
	}

	ready := make([]string, 0, len(g.nodes))
	for _, node := range g.nodes {
		if incoming[node] == 0 {
			ready = append(ready, node)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		order = append(order, node)

		for _, target := range g.next[node] {
			incoming[target]--
			if incoming[target] == 0 {
				ready = append(ready, target)
			}
		}
	}

	if len(order) != len(g.nodes) {
		// Every node still holding incoming edges sits on a cycle or
		// behind one.
		var stuck []string
		for _, node := range g.nodes {
			if incoming[node] > 0 {
				stuck = append(stuck, node)
			}
		}
		return nil, &CycleError{Cycle: stuck}
	}

	return order, nil
}
