package geometry

import (
	"encoding/json"
	"testing"
)

func TestPointOrder(t *testing.T) {
	p := NewPoint(-3.703790, 40.416775)

	if p.Lon() != -3.703790 {
		t.Errorf("expected lon -3.703790, got %f", p.Lon())
	}
	if p.Lat() != 40.416775 {
		t.Errorf("expected lat 40.416775, got %f", p.Lat())
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[-3.70379,40.416775]" {
		t.Errorf("expected GeoJSON lon-first encoding, got %s", data)
	}
}

func TestRingClose(t *testing.T) {
	r := Ring{NewPoint(2, 1), NewPoint(4, 3), NewPoint(6, 5)}

	if r.Closed() {
		t.Fatal("expected open ring")
	}

	closed := r.Close()
	if len(closed) != 4 {
		t.Fatalf("expected 4 points, got %d", len(closed))
	}
	if !closed[0].Equal(closed[3]) {
		t.Errorf("expected first and last point to match, got %v and %v", closed[0], closed[3])
	}
	if !closed.Closed() {
		t.Error("expected closed ring")
	}
}

func TestRingCloseAlreadyClosed(t *testing.T) {
	r := Ring{NewPoint(2, 1), NewPoint(4, 3), NewPoint(2, 1)}

	closed := r.Close()
	if len(closed) != 3 {
		t.Errorf("expected closed ring to be unchanged, got %d points", len(closed))
	}
}

func TestRingCloseEmpty(t *testing.T) {
	var r Ring

	if closed := r.Close(); len(closed) != 0 {
		t.Errorf("expected empty ring to stay empty, got %d points", len(closed))
	}
	if r.Closed() {
		t.Error("empty ring must not report closed")
	}
}

func TestPolygonAsMultiPolygon(t *testing.T) {
	p := Polygon{
		Ring{NewPoint(2, 1), NewPoint(4, 3), NewPoint(2, 1)},
		Ring{NewPoint(8, 7), NewPoint(10, 9), NewPoint(8, 7)},
	}

	mp := p.AsMultiPolygon()
	if len(mp) != 1 {
		t.Fatalf("expected a single polygon group, got %d", len(mp))
	}
	if len(mp[0]) != 2 {
		t.Errorf("expected both rings in the single group, got %d", len(mp[0]))
	}
}
