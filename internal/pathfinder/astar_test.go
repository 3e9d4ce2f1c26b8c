package pathfinder

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"campus-planner/internal/geometry"
)

var (
	p1 = geometry.Point{X: 1, Y: 1}
	p2 = geometry.Point{X: 1, Y: 2}
	p3 = geometry.Point{X: 2, Y: 1}
	p4 = geometry.Point{X: 2, Y: 2}
	p5 = geometry.Point{X: 0, Y: 0.5}
)

func mustFind(t *testing.T, start, end geometry.Point, edges []Edge) (Path, bool) {
	t.Helper()
	p, ok, err := FindPath(start, end, edges)
	if err != nil {
		t.Fatalf("FindPath(%v, %v): %v", start, end, err)
	}
	return p, ok
}

func wantPath(t *testing.T, start, end geometry.Point, edges []Edge, steps []Edge, dist float64) {
	t.Helper()
	got, ok := mustFind(t, start, end, edges)
	if !ok {
		t.Fatalf("FindPath(%v, %v) found nothing", start, end)
	}
	want := Path{Start: start, End: end, Steps: steps, Weight: dist}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPath(%v, %v) = %+v, want %+v", start, end, got, want)
	}
}

func TestFindPathSingleNode(t *testing.T) {
	wantPath(t, p1, p1, nil, []Edge{}, 0)
	wantPath(t, p2, p2, nil, []Edge{}, 0)
	if _, ok := mustFind(t, p1, p3, nil); ok {
		t.Error("FindPath(p1, p3, []) found a path")
	}
}

func TestFindPathTwoNodes(t *testing.T) {
	edges := []Edge{
		{Start: p1, End: p2, Weight: 1},
		{Start: p2, End: p1, Weight: 2},
	}
	wantPath(t, p1, p1, edges, []Edge{}, 0)
	wantPath(t, p1, p2, edges, []Edge{edges[0]}, 1)
	wantPath(t, p2, p1, edges, []Edge{edges[1]}, 2)
	if _, ok := mustFind(t, p1, p3, edges); ok {
		t.Error("FindPath(p1, p3) found a path to an unknown location")
	}
}

func TestFindPathThreeNodes(t *testing.T) {
	edges := []Edge{
		{Start: p1, End: p2, Weight: 1},
		{Start: p1, End: p3, Weight: 3},
		{Start: p2, End: p1, Weight: 1},
		{Start: p2, End: p3, Weight: 1},
		{Start: p3, End: p1, Weight: 3},
		{Start: p3, End: p2, Weight: 1},
	}
	wantPath(t, p1, p2, edges, []Edge{edges[0]}, 1)
	wantPath(t, p1, p3, edges, []Edge{edges[0], edges[3]}, 2)
	wantPath(t, p2, p1, edges, []Edge{edges[2]}, 1)
	wantPath(t, p2, p3, edges, []Edge{edges[3]}, 1)
	wantPath(t, p3, p1, edges, []Edge{edges[5], edges[2]}, 2)
	wantPath(t, p3, p2, edges, []Edge{edges[5]}, 1)

	oneWay := []Edge{
		{Start: p1, End: p2, Weight: 1},
		{Start: p1, End: p3, Weight: 3},
		{Start: p2, End: p1, Weight: 1},
		{Start: p3, End: p1, Weight: 3},
	}
	wantPath(t, p1, p3, oneWay, []Edge{oneWay[1]}, 3)
	wantPath(t, p2, p3, oneWay, []Edge{oneWay[2], oneWay[1]}, 4)
	wantPath(t, p3, p2, oneWay, []Edge{oneWay[3], oneWay[0]}, 4)
}

// The example graph from Cormen, Leiserson and Rivest with s=p5, t=p2, x=p4,
// y=p1 and z=p3.
func TestFindPathCLR(t *testing.T) {
	edges := []Edge{
		{Start: p5, End: p1, Weight: 5},
		{Start: p5, End: p2, Weight: 10},

		{Start: p1, End: p2, Weight: 3},
		{Start: p1, End: p3, Weight: 2},
		{Start: p1, End: p4, Weight: 9},
		{Start: p1, End: p5, Weight: 5},

		{Start: p2, End: p1, Weight: 2},
		{Start: p2, End: p4, Weight: 1},

		{Start: p3, End: p4, Weight: 6},
		{Start: p3, End: p5, Weight: 7},

		{Start: p4, End: p3, Weight: 4},
	}

	tests := []struct {
		end  geometry.Point
		dist float64
	}{
		{p5, 0}, {p2, 8}, {p4, 9}, {p1, 5}, {p3, 7},
	}
	for _, tt := range tests {
		got, ok := mustFind(t, p5, tt.end, edges)
		if !ok || got.Weight != tt.dist {
			t.Errorf("FindPath(s, %v) = %v (found %v), want weight %v", tt.end, got.Weight, ok, tt.dist)
		}
	}

	wantPath(t, p5, p3, edges, []Edge{edges[0], edges[3]}, 7)
	wantPath(t, p5, p4, edges, []Edge{edges[0], edges[2], edges[7]}, 9)
}

func TestFindPathInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(331))
	for round := 0; round < 40; round++ {
		points, edges := randomGraph(rng, rng.Intn(25)+2, rng.Intn(80))
		g, err := NewGraph(edges)
		if err != nil {
			t.Fatal(err)
		}
		dist := bellmanFord(points, edges, points[0])

		for _, end := range points {
			path, ok := g.FindPath(points[0], end)
			want, reachable := dist[end]
			if ok != reachable {
				t.Fatalf("round %d: FindPath to %v found=%v, want %v", round, end, ok, reachable)
			}
			if !ok {
				continue
			}
			if math.Abs(path.Weight-want) > 1e-9 {
				t.Fatalf("round %d: weight to %v = %v, want %v", round, end, path.Weight, want)
			}

			var sum float64
			for _, s := range path.Steps {
				sum += s.Weight
			}
			if sum != path.Weight {
				t.Fatalf("round %d: cached weight %v != step sum %v", round, path.Weight, sum)
			}
			locs, err := path.Locations()
			if err != nil {
				t.Fatalf("round %d: %v", round, err)
			}
			if locs[0] != points[0] || locs[len(locs)-1] != end {
				t.Fatalf("round %d: path runs %v -> %v", round, locs[0], locs[len(locs)-1])
			}
		}
	}
}

// randomGraph places n points on a grid and links random pairs with weights
// no shorter than the straight line between them.
func randomGraph(rng *rand.Rand, n, m int) ([]geometry.Point, []Edge) {
	seen := make(map[geometry.Point]bool)
	var points []geometry.Point
	for len(points) < n {
		p := geometry.Point{X: float64(rng.Intn(50)), Y: float64(rng.Intn(50))}
		if !seen[p] {
			seen[p] = true
			points = append(points, p)
		}
	}
	edges := make([]Edge, m)
	for i := range edges {
		a := points[rng.Intn(n)]
		b := points[rng.Intn(n)]
		edges[i] = Edge{Start: a, End: b, Weight: geometry.Distance(a, b) * (1 + rng.Float64())}
	}
	return points, edges
}

func bellmanFord(points []geometry.Point, edges []Edge, src geometry.Point) map[geometry.Point]float64 {
	dist := map[geometry.Point]float64{src: 0}
	for range points {
		for _, e := range edges {
			d, ok := dist[e.Start]
			if !ok {
				continue
			}
			if cur, ok := dist[e.End]; !ok || d+e.Weight < cur {
				dist[e.End] = d + e.Weight
			}
		}
	}
	return dist
}

func TestNewGraphRejectsBadEdges(t *testing.T) {
	if _, err := NewGraph([]Edge{{Start: p1, End: p2, Weight: -1}}); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("negative weight: err = %v, want ErrNegativeWeight", err)
	}
	if _, err := NewGraph([]Edge{{Start: p1, End: p2, Weight: math.NaN()}}); !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("NaN weight: err = %v, want ErrNegativeWeight", err)
	}
	nan := geometry.Point{X: math.NaN(), Y: 0}
	if _, _, err := FindPath(p1, p2, []Edge{{Start: nan, End: p2, Weight: 1}}); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("NaN point: err = %v, want ErrInvalidPoint", err)
	}
}

func TestGraphCounts(t *testing.T) {
	g, err := NewGraph([]Edge{
		{Start: p1, End: p2, Weight: 1},
		{Start: p1, End: p3, Weight: 1},
		{Start: p2, End: p1, Weight: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.NumNodes() != 2 || g.NumEdges() != 3 || len(g.All()) != 3 || len(g.Edges(p1)) != 2 {
		t.Errorf("nodes=%d edges=%d all=%d out(p1)=%d", g.NumNodes(), g.NumEdges(), len(g.All()), len(g.Edges(p1)))
	}
}

func TestLocations(t *testing.T) {
	a, b, c := geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 1}, geometry.Point{X: 2, Y: 2}
	path := Path{Start: a, End: c, Steps: []Edge{
		{Start: a, End: b, Weight: 1},
		{Start: b, End: c, Weight: 1},
	}}
	locs, err := path.Locations()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(locs, []geometry.Point{a, b, c}) {
		t.Errorf("Locations = %v", locs)
	}

	broken := Path{Start: a, End: c, Steps: []Edge{
		{Start: a, End: b, Weight: 1},
		{Start: a, End: c, Weight: 1},
	}}
	if _, err := broken.Locations(); !errors.Is(err, ErrDisconnectedPath) {
		t.Errorf("broken path: err = %v, want ErrDisconnectedPath", err)
	}
}
