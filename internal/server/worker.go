package server

import (
	"context"
	"log"
	"time"

	"github.com/cicconee/lez-map/internal/zone"
)

// worker re-runs the export on a fixed interval so the served
// collection tracks the publication without an external scheduler.
type worker struct {
	zones  *zone.Service
	logger *log.Logger
	d      time.Duration
	killCh <-chan struct{}
}

func (w *worker) start() {
	ticker := time.NewTicker(w.d)

	for {
		select {
		case <-ticker.C:
			w.refresh(context.Background())
		case <-w.killCh:
			ticker.Stop()
			return
		}
	}
}

func (w *worker) refresh(ctx context.Context) {
	result, err := w.zones.Run(ctx)
	if err != nil {
		w.logger.Printf("failed refreshing zone collection: %v\n", err)
		return
	}

	for _, fail := range result.Fails {
		w.logger.Printf("failed to process resource (url=%s): %v\n", fail.URL, fail.Err())
	}

	w.logger.Printf("total features written: %d\n", result.Features)
}
