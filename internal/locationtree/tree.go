// Package locationtree organizes points into a quadrant tree for
// nearest-neighbor queries.
//
// Each split is made at the centroid of the points below it. A point belongs
// to the west half iff x < c.x and to the north half iff y < c.y, so points
// on a splitting line go east or south.
package locationtree

import (
	"github.com/paulmach/orb"

	"campus-planner/internal/geometry"
)

// Tree is one of Empty, Leaf or Split.
type Tree interface {
	isTree()
}

// Empty is a tree holding no points.
type Empty struct{}

// Leaf is a tree holding exactly one point.
type Leaf struct {
	Loc geometry.Point
}

// Split divides its points into four quadrants around At.
type Split struct {
	At             geometry.Point
	NW, NE, SW, SE Tree
}

func (Empty) isTree()  {}
func (Leaf) isTree()   {}
func (*Split) isTree() {}

// Build returns a tree containing exactly the given points. Coincident points
// are stored once.
func Build(points []geometry.Point) Tree {
	switch {
	case len(points) == 0:
		return Empty{}
	case allSame(points):
		return Leaf{Loc: points[0]}
	}

	// Centroid cannot fail on a non-empty slice.
	c, _ := geometry.Centroid(points)
	q := partition(points, c)
	if q.degenerate(len(points)) {
		// Rounding put the centroid on the edge of the set; the max corner
		// still separates distinct points.
		c = maxCorner(points)
		q = partition(points, c)
	}

	return &Split{
		At: c,
		NW: Build(q[nw]),
		NE: Build(q[ne]),
		SW: Build(q[sw]),
		SE: Build(q[se]),
	}
}

const (
	nw = iota
	ne
	sw
	se
)

type quadrants [4][]geometry.Point

func (q quadrants) degenerate(n int) bool {
	for _, pts := range q {
		if len(pts) == n {
			return true
		}
	}
	return false
}

func partition(points []geometry.Point, c geometry.Point) quadrants {
	var q quadrants
	for _, p := range points {
		i := quadrantOf(p, c)
		q[i] = append(q[i], p)
	}
	return q
}

// quadrantOf applies the west iff x < c.x, north iff y < c.y rule.
func quadrantOf(p, c geometry.Point) int {
	west := p.X < c.X
	north := p.Y < c.Y
	switch {
	case north && west:
		return nw
	case north:
		return ne
	case west:
		return sw
	default:
		return se
	}
}

func maxCorner(points []geometry.Point) geometry.Point {
	m := points[0]
	for _, p := range points[1:] {
		m.X = max(m.X, p.X)
		m.Y = max(m.Y, p.Y)
	}
	return m
}

// allSame reports whether every point equals the first. Coincident points can
// never be separated by a split.
func allSame(points []geometry.Point) bool {
	for _, p := range points[1:] {
		if p != points[0] {
			return false
		}
	}
	return true
}

// Points returns every point stored in the tree, in NW, NE, SW, SE order.
func Points(t Tree) []geometry.Point {
	var out []geometry.Point
	walk(t, func(p geometry.Point) {
		out = append(out, p)
	})
	return out
}

// MultiPoint returns the tree's points as an orb geometry.
func MultiPoint(t Tree) orb.MultiPoint {
	var mp orb.MultiPoint
	walk(t, func(p geometry.Point) {
		mp = append(mp, p.Orb())
	})
	return mp
}

func walk(t Tree, visit func(geometry.Point)) {
	switch n := t.(type) {
	case Leaf:
		visit(n.Loc)
	case *Split:
		walk(n.NW, visit)
		walk(n.NE, visit)
		walk(n.SW, visit)
		walk(n.SE, visit)
	}
}
