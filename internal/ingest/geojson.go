// Package ingest implements the spec.md §6 "channel addition" external
// contract: reading a channel polyline from an interchange file format
// instead of constructing it in-process. Grounded on
// GrainArc-SouceMap/methods/geojson.go and views/geoview.go, which decode
// raw GeoJSON bytes into paulmach/orb geometries for the same reason (an
// external vector source feeding a domain-specific geometry type).
package ingest

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"meanderflow/internal/vecmath"
)

// LoadChannelGeoJSON reads a GeoJSON document and returns the vertex
// sequence of its first LineString Feature, converted to the simulation's
// own Vector2 type. It is an ingestion boundary: the returned points are
// handed to Simulation.AddChannel, which applies spec.md §6's own
// validation (minimum vertex count, domain containment).
func LoadChannelGeoJSON(data []byte) ([]vecmath.Vector2, error) {
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("ingest: parsing GeoJSON: %w", err)
	}

	for _, feature := range collection.Features {
		line, ok := feature.Geometry.(orb.LineString)
		if !ok {
			continue
		}
		return toVector2(line), nil
	}
	return nil, fmt.Errorf("ingest: no LineString feature found")
}

func toVector2(line orb.LineString) []vecmath.Vector2 {
	points := make([]vecmath.Vector2, len(line))
	for i, p := range line {
		points[i] = vecmath.NewVector2(p.X(), p.Y())
	}
	return points
}
