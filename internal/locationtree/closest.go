package locationtree

import (
	"errors"
	"math"

	"campus-planner/internal/geometry"
)

var (
	// ErrNoQueries is returned by ClosestTo when no query points are given.
	ErrNoQueries = errors.New("locationtree: no query locations given")
	// ErrEmptyTree is returned by ClosestTo when the tree holds no points.
	ErrEmptyTree = errors.New("locationtree: no locations in the tree")
)

// closest is the best candidate found so far in a search.
type closest struct {
	loc   geometry.Point
	dist  float64
	found bool
}

var noInfo = closest{dist: math.Inf(1)}

// ClosestTo returns the point in t that is closest to any of the query
// points, together with that distance.
func ClosestTo(t Tree, queries []geometry.Point) (geometry.Point, float64, error) {
	if len(queries) == 0 {
		return geometry.Point{}, 0, ErrNoQueries
	}
	if _, ok := t.(Empty); ok || t == nil {
		return geometry.Point{}, 0, ErrEmptyTree
	}

	best := noInfo
	for _, q := range queries {
		cl := closestInTree(t, q, geometry.Everywhere, noInfo)
		if cl.found && (!best.found || cl.dist < best.dist) {
			best = cl
		}
	}
	return best.loc, best.dist, nil
}

// closestInTree returns the closer of best and the closest point of t to q.
// bounds must contain every point of t.
func closestInTree(t Tree, q geometry.Point, bounds geometry.Region, best closest) closest {
	if geometry.DistanceMoreThan(q, bounds, best.dist) {
		return best
	}

	switch n := t.(type) {
	case Leaf:
		if d := geometry.Distance(q, n.Loc); d < best.dist {
			return closest{loc: n.Loc, dist: d, found: true}
		}
		return best
	case *Split:
		for _, i := range searchOrder(q, n.At) {
			best = closestInTree(n.child(i), q, quadrantBounds(bounds, n.At, i), best)
		}
		return best
	default:
		return best
	}
}

// searchOrder lists the quadrants of a split at c in the order they should be
// searched for q: the one containing q, then whichever neighbor lies across
// the nearer splitting line, then the other neighbor, then the diagonal.
func searchOrder(q, c geometry.Point) [4]int {
	home := quadrantOf(q, c)
	acrossX := home ^ 1 // east <-> west
	acrossY := home ^ 2 // north <-> south
	if math.Abs(q.X-c.X) < math.Abs(q.Y-c.Y) {
		return [4]int{home, acrossX, acrossY, home ^ 3}
	}
	return [4]int{home, acrossY, acrossX, home ^ 3}
}

func (s *Split) child(i int) Tree {
	switch i {
	case nw:
		return s.NW
	case ne:
		return s.NE
	case sw:
		return s.SW
	default:
		return s.SE
	}
}

// quadrantBounds narrows bounds to quadrant i of a split at c.
func quadrantBounds(bounds geometry.Region, c geometry.Point, i int) geometry.Region {
	r := bounds
	if i&1 != 0 { // east
		r.X1 = c.X
	} else {
		r.X2 = c.X
	}
	if i&2 != 0 { // south
		r.Y1 = c.Y
	} else {
		r.Y2 = c.Y
	}
	return r
}
