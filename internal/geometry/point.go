package geometry

import (
	"fmt"
	"strings"
)

// Point is a single coordinate pair stored in GeoJSON order,
// longitude first.
type Point []float64

func NewPoint(lon, lat float64) Point {
	return Point{lon, lat}
}

func (p Point) Lon() float64 {
	return p[0]
}

func (p Point) Lat() float64 {
	return p[1]
}

func (p Point) Equal(o Point) bool {
	if len(p) != len(o) {
		return false
	}

	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}

	return true
}

func (p Point) String() string {
	if len(p) < 2 {
		return ""
	}

	return fmt.Sprintf("(%f,%f)", p.Lon(), p.Lat())
}

// Ring is an ordered boundary loop. A valid GeoJSON ring starts and
// ends on the same point.
type Ring []Point

func (r Ring) Closed() bool {
	if len(r) == 0 {
		return false
	}

	return r[0].Equal(r[len(r)-1])
}

// Close returns the ring with its first point appended if the ring is
// non-empty and not already closed.
func (r Ring) Close() Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}

	return append(r, r[0])
}

func (r Ring) String() string {
	if len(r) == 0 {
		return ""
	}

	var ss []string
	for _, pt := range r {
		ss = append(ss, pt.String())
	}

	return fmt.Sprintf("(%s)", strings.Join(ss, ","))
}
