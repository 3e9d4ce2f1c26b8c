package campus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"campus-planner/internal/geometry"
	"campus-planner/internal/pathfinder"
)

// ParseEdges reads walkway edges, one per line, in the form
// "x1,y1,x2,y2,dist". Coordinates are kept exactly as parsed so that edges
// sharing an endpoint in the file share it in the graph.
func ParseEdges(r io.Reader) ([]pathfinder.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var edges []pathfinder.Edge
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read edges: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var vals [5]float64
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", line, i+1, err)
			}
			vals[i] = v
		}
		edges = append(edges, pathfinder.Edge{
			Start:  geometry.Point{X: vals[0], Y: vals[1]},
			End:    geometry.Point{X: vals[2], Y: vals[3]},
			Weight: vals[4],
		})
	}
	return edges, nil
}

// LoadEdges reads the walkway edges from a CSV file.
func LoadEdges(path string) ([]pathfinder.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edges file: %w", err)
	}
	defer f.Close()

	edges, err := ParseEdges(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d walkway edges from %s\n", len(edges), path)
	return edges, nil
}

// EdgeLines returns the edges as line segments for drawing, with edges that
// connect the same two points in opposite directions reported once.
func EdgeLines(edges []pathfinder.Edge) [][2]geometry.Point {
	type key struct{ a, b geometry.Point }
	seen := make(map[key]bool, len(edges))
	lines := make([][2]geometry.Point, 0, len(edges))

	for _, e := range edges {
		if seen[key{e.Start, e.End}] || seen[key{e.End, e.Start}] {
			continue
		}
		seen[key{e.Start, e.End}] = true
		lines = append(lines, [2]geometry.Point{e.Start, e.End})
	}
	return lines
}
