package geometry

// Polygon is one group of rings. The DGT publication never
// distinguishes holes, so every ring is treated as an outer boundary
// of the same zone.
type Polygon []Ring

func (p Polygon) AsMultiPolygon() MultiPolygon {
	return MultiPolygon{p}
}

type MultiPolygon []Polygon
