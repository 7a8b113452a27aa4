package datex

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/cicconee/lez-map/internal/geometry"
)

// UnknownZoneName is the placeholder used when a controlled zone does
// not declare a parseable name.
const UnknownZoneName = "Unknown Zone"

// namespaces is the fixed prefix table of the DATEX II controlled
// zone publication schema.
var namespaces = map[string]string{
	"conz": "http://levelC/schema/3/controlledZone",
	"com":  "http://levelC/schema/3/common",
	"tra":  "http://levelC/schema/3/trafficRegulation",
	"loc":  "http://levelC/schema/3/locationReferencing",
}

// qname resolves a prefixed name such as "conz:controlledZone" against
// the namespace table.
func qname(prefixed string) xml.Name {
	prefix, local, _ := strings.Cut(prefixed, ":")
	return xml.Name{Space: namespaces[prefix], Local: local}
}

// ControlledZone is one regulated area declared in a publication
// document. Rings holds every boundary loop of the zone, each already
// closed and in GeoJSON coordinate order.
type ControlledZone struct {
	Name  string
	Rings geometry.Polygon
}

// parseControlledZones extracts every controlled zone in the document.
// A coordinate that cannot be parsed fails the whole document so the
// caller can skip the resource.
func parseControlledZones(doc *Node) ([]ControlledZone, error) {
	var zones []ControlledZone
	for _, n := range doc.FindAll(qname("conz:controlledZone")) {
		zone, err := parseControlledZone(n)
		if err != nil {
			return nil, err
		}

		zones = append(zones, zone)
	}

	return zones, nil
}

func parseControlledZone(n *Node) (ControlledZone, error) {
	rings, err := zoneRings(n)
	if err != nil {
		return ControlledZone{}, err
	}

	return ControlledZone{
		Name:  zoneName(n),
		Rings: rings,
	}, nil
}

// zoneName returns the first name value declared in the zone, falling
// back to UnknownZoneName.
func zoneName(n *Node) string {
	for _, nameNode := range n.FindAll(qname("conz:name")) {
		values := nameNode.Child(qname("com:values"))
		if values == nil {
			continue
		}

		value := values.Child(qname("com:value"))
		if value == nil {
			continue
		}

		if text := value.TrimmedText(); text != "" {
			return text
		}
	}

	return UnknownZoneName
}

// zoneRings collects every polygon boundary declared in the zone.
// Corner groups without coordinates produce no ring; non-empty rings
// are closed by repeating the first point when needed.
func zoneRings(n *Node) (geometry.Polygon, error) {
	var rings geometry.Polygon
	for _, corners := range n.FindAll(qname("loc:openlrPolygonCorners")) {
		ring, err := cornerRing(corners)
		if err != nil {
			return nil, err
		}
		if len(ring) == 0 {
			continue
		}

		rings = append(rings, ring.Close())
	}

	return rings, nil
}

func cornerRing(corners *Node) (geometry.Ring, error) {
	var ring geometry.Ring
	for _, coord := range corners.ChildrenNamed(qname("loc:openlrCoordinates")) {
		point, err := parseCoordinate(coord)
		if err != nil {
			return nil, err
		}

		ring = append(ring, point)
	}

	return ring, nil
}

// parseCoordinate reads a latitude/longitude element pair and returns
// the point in GeoJSON (lon, lat) order.
func parseCoordinate(n *Node) (geometry.Point, error) {
	lat, err := childFloat(n, qname("loc:latitude"))
	if err != nil {
		return nil, err
	}

	lon, err := childFloat(n, qname("loc:longitude"))
	if err != nil {
		return nil, err
	}

	return geometry.NewPoint(lon, lat), nil
}

func childFloat(n *Node, name xml.Name) (float64, error) {
	c := n.Child(name)
	if c == nil {
		return 0, fmt.Errorf("missing %s element", name.Local)
	}

	v, err := strconv.ParseFloat(c.TrimmedText(), 64)
	if err != nil {
		return 0, fmt.Errorf("failed parsing %s: %w", name.Local, err)
	}

	return v, nil
}
