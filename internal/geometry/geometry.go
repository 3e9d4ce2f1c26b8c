// Package geometry holds the planar point and region primitives shared by the
// path finder and the location tree.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ErrNoPoints is returned when an operation needs at least one point.
var ErrNoPoints = errors.New("geometry: no points given")

// Point is an (x, y) coordinate on the campus map. Points compare with ==,
// which is exact coordinate equality.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Orb converts the point to its orb representation.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// FromOrb converts an orb point back into a Point.
func FromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// IsValid reports whether both coordinates are real numbers (not NaN).
func (p Point) IsValid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// SquaredDistance returns dist(a, b)^2.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance calculates Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Centroid returns the average position of the given points.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrNoPoints
	}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}, nil
}

// Region is an axis-aligned rectangle of the plane. Either end of a
// dimension may be infinite.
//
// Inv: X1 <= X2 and Y1 <= Y2
type Region struct {
	X1, X2, Y1, Y2 float64
}

// Everywhere is the region covering the entire plane.
var Everywhere = Region{
	X1: math.Inf(-1), X2: math.Inf(1),
	Y1: math.Inf(-1), Y2: math.Inf(1),
}

// Contains reports whether p lies in the region, boundary included.
func (r Region) Contains(p Point) bool {
	return r.X1 <= p.X && p.X <= r.X2 && r.Y1 <= p.Y && p.Y <= r.Y2
}

// Bound converts the region to an orb bound.
func (r Region) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.X1, r.Y1}, Max: orb.Point{r.X2, r.Y2}}
}

// DistanceMoreThan reports whether the distance from p to the closest point
// of region is greater than d. It panics if d is negative.
//
// Y grows southwards, matching the map's pixel coordinates, so Y1 is the
// northern edge of the region.
func DistanceMoreThan(p Point, region Region, d float64) bool {
	if d < 0 || math.IsNaN(d) {
		panic(fmt.Sprintf("geometry: not a valid distance: %v", d))
	}

	var sq float64
	switch {
	case region.Contains(p):
		return false
	case p.X > region.X2 && p.Y < region.Y1: // NE corner
		sq = SquaredDistance(p, Point{X: region.X2, Y: region.Y1})
	case p.X > region.X2 && p.Y > region.Y2: // SE corner
		sq = SquaredDistance(p, Point{X: region.X2, Y: region.Y2})
	case p.X < region.X1 && p.Y > region.Y2: // SW corner
		sq = SquaredDistance(p, Point{X: region.X1, Y: region.Y2})
	case p.X < region.X1 && p.Y < region.Y1: // NW corner
		sq = SquaredDistance(p, Point{X: region.X1, Y: region.Y1})
	case p.Y < region.Y1:
		sq = square(region.Y1 - p.Y)
	case p.X > region.X2:
		sq = square(p.X - region.X2)
	case p.Y > region.Y2:
		sq = square(p.Y - region.Y2)
	default: // west band
		sq = square(region.X1 - p.X)
	}
	return sq > d*d
}

func square(v float64) float64 {
	return v * v
}
