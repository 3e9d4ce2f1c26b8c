package pathfinder

import (
	"errors"
	"fmt"
	"math"

	"campus-planner/internal/geometry"
)

var (
	// ErrNegativeWeight is returned when an edge has a negative or NaN weight.
	ErrNegativeWeight = errors.New("pathfinder: edge weight must be non-negative")
	// ErrInvalidPoint is returned when an edge endpoint has a NaN coordinate,
	// which could never compare equal to itself as a graph key.
	ErrInvalidPoint = errors.New("pathfinder: edge endpoint is not a valid point")
)

// Edge is a directed, straight-line walkway between two points on the map.
type Edge struct {
	Start  geometry.Point `json:"start"`
	End    geometry.Point `json:"end"`
	Weight float64        `json:"dist"`
}

// Graph maps each location to the edges leaving it. Locations are matched by
// exact coordinate equality, so edges must reuse the coordinates they were
// loaded with; any rounding or transformation of points would split a node in
// two.
//
// A Graph is immutable once built and safe for concurrent searches.
type Graph struct {
	out   map[geometry.Point][]Edge
	edges int
}

// NewGraph builds the adjacency map for the given edges.
func NewGraph(edges []Edge) (*Graph, error) {
	g := &Graph{out: make(map[geometry.Point][]Edge)}
	for i, e := range edges {
		if !e.Start.IsValid() || !e.End.IsValid() {
			return nil, fmt.Errorf("edge %d %v -> %v: %w", i, e.Start, e.End, ErrInvalidPoint)
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("edge %d weight %v: %w", i, e.Weight, ErrNegativeWeight)
		}
		g.out[e.Start] = append(g.out[e.Start], e)
	}
	g.edges = len(edges)
	return g, nil
}

// Edges returns the edges leaving p.
func (g *Graph) Edges(p geometry.Point) []Edge {
	return g.out[p]
}

// NumNodes returns the number of locations with at least one outgoing edge.
func (g *Graph) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	return g.edges
}

// All returns every edge in the graph, grouped by start location.
func (g *Graph) All() []Edge {
	all := make([]Edge, 0, g.edges)
	for _, es := range g.out {
		all = append(all, es...)
	}
	return all
}
