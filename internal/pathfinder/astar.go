// Package pathfinder finds shortest walking paths over a weighted graph of
// campus locations.
package pathfinder

import (
	"errors"
	"fmt"

	"campus-planner/internal/geometry"
	"campus-planner/internal/heap"
)

// ErrDisconnectedPath is returned by Locations when a step does not start where
// the previous one ended.
var ErrDisconnectedPath = errors.New("pathfinder: path jumps from one location to another")

// Path is a route from Start to End following Steps in order. Each step
// starts where the previous one ended. Weight caches the sum of the step
// weights.
type Path struct {
	Start  geometry.Point `json:"start"`
	End    geometry.Point `json:"end"`
	Steps  []Edge         `json:"steps"`
	Weight float64        `json:"dist"`
}

// Locations returns every location on the path exactly once, in walking
// order. An empty path yields just its start.
func (p Path) Locations() ([]geometry.Point, error) {
	locs := make([]geometry.Point, 0, len(p.Steps)+1)
	locs = append(locs, p.Start)
	for i, s := range p.Steps {
		if s.Start != locs[len(locs)-1] {
			return nil, fmt.Errorf("step %d starts at %v: %w", i, s.Start, ErrDisconnectedPath)
		}
		locs = append(locs, s.End)
	}
	return locs, nil
}

// node is a partial path in the search: the last step taken plus a link to
// the path it extends.
type node struct {
	end      geometry.Point
	dist     float64 // total weight from the start
	estimate float64 // dist plus straight-line distance to the goal
	step     Edge
	parent   *node
}

func compareNodes(a, b *node) int {
	switch {
	case a.estimate < b.estimate:
		return -1
	case a.estimate > b.estimate:
		return 1
	}
	return 0
}

// FindPath returns the shortest path from start to end. The boolean is false
// when no path exists.
//
// The search is A* with the straight-line distance to end as its heuristic,
// so it is only optimal while edge weights are at least the straight-line
// length of their edge. Stale queue entries are skipped instead of being
// updated in place.
func (g *Graph) FindPath(start, end geometry.Point) (Path, bool) {
	if start == end {
		return Path{Start: start, End: start, Steps: []Edge{}}, true
	}

	found := make(map[geometry.Point]bool)
	queue := heap.New(compareNodes)
	queue.Insert(&node{end: start, estimate: geometry.Distance(start, end)})

	for !queue.IsEmpty() {
		// Cannot fail: the queue is not empty.
		current, _ := queue.RemoveMin()
		if current.end == end {
			return current.path(start), true
		}

		if found[current.end] {
			continue
		}
		found[current.end] = true

		for _, e := range g.out[current.end] {
			if found[e.End] {
				continue
			}
			dist := current.dist + e.Weight
			queue.Insert(&node{
				end:      e.End,
				dist:     dist,
				estimate: dist + geometry.Distance(e.End, end),
				step:     e,
				parent:   current,
			})
		}
	}

	return Path{}, false
}

// path rebuilds the steps leading to n.
func (n *node) path(start geometry.Point) Path {
	count := 0
	for c := n; c.parent != nil; c = c.parent {
		count++
	}
	steps := make([]Edge, count)
	for c := n; c.parent != nil; c = c.parent {
		count--
		steps[count] = c.step
	}
	return Path{Start: start, End: n.end, Steps: steps, Weight: n.dist}
}

// FindPath builds a graph from edges and searches it once. Callers running
// many searches over the same edges should build the Graph themselves.
func FindPath(start, end geometry.Point, edges []Edge) (Path, bool, error) {
	g, err := NewGraph(edges)
	if err != nil {
		return Path{}, false, err
	}
	p, ok := g.FindPath(start, end)
	return p, ok, nil
}
