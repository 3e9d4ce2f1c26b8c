package walk

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// GeoJSON renders the walk as a feature collection: one LineString for the
// path and one Point per nearby friend.
func (w Walk) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !w.Found {
		return fc
	}

	line := orb.LineString{w.Path.Start.Orb()}
	for _, s := range w.Path.Steps {
		line = append(line, s.End.Orb())
	}
	path := geojson.NewFeature(line)
	path.Properties["kind"] = "path"
	path.Properties["dist"] = w.Path.Weight
	path.Properties["straightLength"] = planar.Length(line)
	fc.Append(path)

	for _, n := range w.Nearby {
		f := geojson.NewFeature(n.Loc.Orb())
		f.Properties["kind"] = "nearby"
		f.Properties["friend"] = n.Friend
		f.Properties["dist"] = n.Dist
		fc.Append(f)
	}
	return fc
}
