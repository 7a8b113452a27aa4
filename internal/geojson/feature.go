package geojson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cicconee/lez-map/internal/geometry"
)

const (
	FeatureType      = "Feature"
	CollectionType   = "FeatureCollection"
	MultiPolygonType = "MultiPolygon"
)

type Properties struct {
	Name string `json:"name"`
}

type Geometry struct {
	Type        string                `json:"type"`
	Coordinates geometry.MultiPolygon `json:"coordinates"`
}

type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   Geometry   `json:"geometry"`
}

// NewFeature returns a Feature wrapping the geometry as a
// MultiPolygon.
func NewFeature(name string, geo geometry.MultiPolygon) Feature {
	return Feature{
		Type:       FeatureType,
		Properties: Properties{Name: name},
		Geometry: Geometry{
			Type:        MultiPolygonType,
			Coordinates: geo,
		},
	}
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func NewFeatureCollection(features []Feature) *FeatureCollection {
	return &FeatureCollection{
		Type:     CollectionType,
		Features: features,
	}
}

// Decode reads a feature collection from r.
func Decode(r io.Reader) (*FeatureCollection, error) {
	var collection FeatureCollection
	if err := json.NewDecoder(r).Decode(&collection); err != nil {
		return nil, fmt.Errorf("failed decoding feature collection: %w", err)
	}

	return &collection, nil
}
