package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cicconee/lez-map/internal/datex"
	"github.com/cicconee/lez-map/internal/geojson"
	"github.com/cicconee/lez-map/internal/geometry"
	"github.com/cicconee/lez-map/internal/zone"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestHandler(t *testing.T, sourceURL string) *Handler {
	t.Helper()

	svc := zone.New(
		&datex.Client{BaseURL: sourceURL},
		&geojson.Writer{Dir: t.TempDir()},
		testLogger(),
	)

	h := NewHandler(testLogger())
	h.zones = svc
	return h
}

func TestHandleGetZonesBeforeRun(t *testing.T) {
	h := newTestHandler(t, "http://unused.example/")

	rec := httptest.NewRecorder()
	h.HandleGetZones()(rec, httptest.NewRequest(http.MethodGet, "/zones", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.ErrorMsg == "" {
		t.Error("expected an error message")
	}
}

func TestHandleGetZones(t *testing.T) {
	h := newTestHandler(t, "http://unused.example/")

	ring := geometry.Ring{
		geometry.NewPoint(2, 1),
		geometry.NewPoint(4, 3),
		geometry.NewPoint(2, 1),
	}
	collection := geojson.NewFeatureCollection([]geojson.Feature{
		geojson.NewFeature("Madrid ZBE", geometry.Polygon{ring}.AsMultiPolygon()),
	})
	if _, err := h.zones.Writer.Write(collection, zone.DefaultOutputFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := httptest.NewRecorder()
	h.HandleGetZones()(rec, httptest.NewRequest(http.MethodGet, "/zones", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var got geojson.FeatureCollection
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Features) != 1 || got.Features[0].Properties.Name != "Madrid ZBE" {
		t.Errorf("expected the written collection, got %+v", got)
	}
}

func TestHandleGetRunsDisabled(t *testing.T) {
	h := newTestHandler(t, "http://unused.example/")

	rec := httptest.NewRecorder()
	h.HandleGetRuns()(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when run history is disabled, got %d", rec.Code)
	}
}

func TestHandleGetRunsBadLimit(t *testing.T) {
	h := newTestHandler(t, "http://unused.example/")
	h.runs = zone.NewStore(nil)

	rec := httptest.NewRecorder()
	h.HandleGetRuns()(rec, httptest.NewRequest(http.MethodGet, "/runs?limit=zero", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad limit, got %d", rec.Code)
	}
}

func TestHandleRefresh(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			fmt.Fprint(w, `<a href="zones.xml">zones</a>`)
		case "/zones.xml":
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
				<conz:controlledZonePublication
					xmlns:conz="http://levelC/schema/3/controlledZone"
					xmlns:com="http://levelC/schema/3/common"
					xmlns:tra="http://levelC/schema/3/trafficRegulation"
					xmlns:loc="http://levelC/schema/3/locationReferencing">
					<conz:controlledZone>
						<conz:name><com:values><com:value>Madrid ZBE</com:value></com:values></conz:name>
						<loc:openlrPolygonCorners>
							<loc:openlrCoordinates>
								<loc:latitude>40.4</loc:latitude>
								<loc:longitude>-3.7</loc:longitude>
							</loc:openlrCoordinates>
							<loc:openlrCoordinates>
								<loc:latitude>40.5</loc:latitude>
								<loc:longitude>-3.8</loc:longitude>
							</loc:openlrCoordinates>
						</loc:openlrPolygonCorners>
					</conz:controlledZone>
				</conz:controlledZonePublication>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)

	h := newTestHandler(t, ts.URL+"/")

	rec := httptest.NewRecorder()
	h.HandleRefresh()(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Resources int    `json:"resources"`
		Features  int    `json:"features"`
		Path      string `json:"path"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Resources != 1 || body.Features != 1 || body.Path == "" {
		t.Errorf("unexpected refresh summary: %+v", body)
	}
}

func TestParseLimit(t *testing.T) {
	limit, err := ParseLimit("", 20)
	if err != nil || limit != 20 {
		t.Errorf("expected default 20, got %d (%v)", limit, err)
	}

	limit, err = ParseLimit("5", 20)
	if err != nil || limit != 5 {
		t.Errorf("expected 5, got %d (%v)", limit, err)
	}

	if _, err := ParseLimit("-1", 20); err == nil {
		t.Error("expected error for negative limit")
	}
}
