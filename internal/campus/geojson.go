package campus

import (
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"campus-planner/internal/geometry"
)

// LoadBuildingsGeoJSON reads buildings from a GeoJSON feature collection of
// Point features carrying "shortName" and "longName" properties.
func LoadBuildingsGeoJSON(path string) ([]Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read buildings file: %w", err)
	}

	buildings, err := ParseBuildingsGeoJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d buildings from %s\n", len(buildings), path)
	return buildings, nil
}

// ParseBuildingsGeoJSON converts a GeoJSON feature collection to buildings.
func ParseBuildingsGeoJSON(data []byte) ([]Building, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}

	buildings := make([]Building, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("feature %d: geometry is %T, want Point", i, f.Geometry)
		}
		short, _ := f.Properties["shortName"].(string)
		long, _ := f.Properties["longName"].(string)
		if short == "" {
			return nil, fmt.Errorf("feature %d: missing shortName property", i)
		}
		buildings = append(buildings, Building{
			ShortName: short,
			LongName:  long,
			Location:  geometry.FromOrb(pt),
		})
	}
	return buildings, nil
}

// BuildingsGeoJSON converts buildings to a GeoJSON feature collection.
func BuildingsGeoJSON(buildings []Building) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, b := range buildings {
		f := geojson.NewFeature(b.Location.Orb())
		f.Properties["shortName"] = b.ShortName
		f.Properties["longName"] = b.LongName
		fc.Append(f)
	}
	return fc
}
