package zone

import (
	"github.com/cicconee/lez-map/internal/datex"
	"github.com/cicconee/lez-map/internal/geojson"
	"github.com/cicconee/lez-map/internal/geometry"
)

// Zone is one named low-emission zone with its boundary rings.
type Zone struct {
	Name       string
	Boundaries geometry.Polygon
}

func fromDatex(z datex.ControlledZone) Zone {
	return Zone{
		Name:       z.Name,
		Boundaries: z.Rings,
	}
}

// Feature returns the zone as a GeoJSON feature whose geometry is a
// MultiPolygon with a single polygon group holding every ring of the
// zone. Zones without any boundary ring produce no feature.
func (z Zone) Feature() (geojson.Feature, bool) {
	if len(z.Boundaries) == 0 {
		return geojson.Feature{}, false
	}

	return geojson.NewFeature(z.Name, z.Boundaries.AsMultiPolygon()), true
}
