package zone

import (
	"time"

	"github.com/cicconee/lez-map/internal/geojson"
)

// FetchFailure records one resource that contributed no features.
type FetchFailure struct {
	URL string `json:"url"`
	err error
}

func (f FetchFailure) Err() error {
	return f.err
}

// ExtractResult accumulates features and per-resource failures across
// one pass over the publication.
type ExtractResult struct {
	Features []geojson.Feature
	Fails    []FetchFailure
}

// RunResult summarizes one export run. Path is empty when no output
// file was written; RunID is zero when run history is disabled.
type RunResult struct {
	Resources int
	Features  int
	Fails     []FetchFailure
	Path      string
	RunID     int
	CreatedAt time.Time
}
