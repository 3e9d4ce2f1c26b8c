package campus

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb/planar"

	"campus-planner/internal/geometry"
)

// buildingTolerance is the half-width of the box each building occupies in
// the R-tree, in map units.
const buildingTolerance = 0.5

// buildingEntry wraps a building for R-tree storage
type buildingEntry struct {
	building Building
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *buildingEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers spatial queries over building locations.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex creates a spatial index over the given buildings.
func NewIndex(buildings []Building) *Index {
	tree := rtreego.NewTree(2, 2, 8) // 2D, min 2, max 8 entries per node

	for _, b := range buildings {
		tree.Insert(&buildingEntry{
			building: b,
			bbox:     rtreego.Point{b.Location.X, b.Location.Y}.ToRect(buildingTolerance),
		})
	}

	return &Index{tree: tree}
}

// Size returns the number of indexed buildings.
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// Nearest returns the building closest to p and its distance. The boolean is
// false when the index is empty.
func (idx *Index) Nearest(p geometry.Point) (Building, float64, bool) {
	item := idx.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if item == nil {
		return Building{}, 0, false
	}
	b := item.(*buildingEntry).building
	return b, planar.Distance(p.Orb(), b.Location.Orb()), true
}

// Within returns the buildings whose locations fall inside region.
// A region may have zero width or height.
func (idx *Index) Within(region geometry.Region) ([]Building, error) {
	if !(region.X1 <= region.X2 && region.Y1 <= region.Y2) {
		return nil, fmt.Errorf("invalid region %+v: min above max", region)
	}
	bbox, err := rtreego.NewRect(
		rtreego.Point{region.X1 - buildingTolerance, region.Y1 - buildingTolerance},
		[]float64{
			region.X2 - region.X1 + 2*buildingTolerance,
			region.Y2 - region.Y1 + 2*buildingTolerance,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid region %+v: %w", region, err)
	}

	results := idx.tree.SearchIntersect(bbox)
	buildings := make([]Building, 0, len(results))
	for _, item := range results {
		b := item.(*buildingEntry).building
		// The R-tree boxes are padded; keep only exact hits.
		if region.Contains(b.Location) {
			buildings = append(buildings, b)
		}
	}
	return buildings, nil
}
