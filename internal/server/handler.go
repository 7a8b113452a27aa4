package server

import (
	"log"
	"net/http"
	"time"

	"github.com/cicconee/lez-map/internal/zone"
)

type Handler struct {
	logger *log.Logger
	zones  *zone.Service
	runs   *zone.Store
}

func NewHandler(l *log.Logger) *Handler {
	return &Handler{
		logger: l,
	}
}

func (h *Handler) NewLogWriter(w http.ResponseWriter, r *http.Request) *LogWriter {
	return NewLogWriter(h.logger, w, r)
}

func (h *Handler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type res struct {
			Message string `json:"message"`
		}

		h.NewLogWriter(w, r).Write(Response{
			Status: http.StatusOK,
			Body:   res{Message: "lez-map is up"},
		})
	}
}

func (h *Handler) HandleGetZones() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writer := h.NewLogWriter(w, r)

		collection, err := h.zones.Collection()
		if err != nil {
			h.logger.Printf("HandleGetZones: failed to load collection: %v", err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   collection,
		})
	}
}

func (h *Handler) HandleGetRuns() http.HandlerFunc {
	type run struct {
		ID         int       `json:"id"`
		TotalZones int       `json:"total_zones"`
		CreatedAt  time.Time `json:"created_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writer := h.NewLogWriter(w, r)

		if h.runs == nil {
			errResp := ErrorResponse{
				Status:   http.StatusNotFound,
				ErrorMsg: "Run history is not enabled",
			}
			writer.Write(errResp.AsResponse())
			return
		}

		limit, err := ParseLimit(r.URL.Query().Get("limit"), 20)
		if err != nil {
			writer.WriteError(err)
			return
		}

		entities, err := h.runs.SelectRuns(r.Context(), limit)
		if err != nil {
			h.logger.Printf("HandleGetRuns: failed to select runs: %v", err)
			writer.WriteError(err)
			return
		}

		runs := []run{}
		for _, e := range entities {
			runs = append(runs, run{
				ID:         e.ID,
				TotalZones: e.TotalZones,
				CreatedAt:  e.CreatedAt,
			})
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   runs,
		})
	}
}

func (h *Handler) HandleRefresh() http.HandlerFunc {
	type res struct {
		Resources int                 `json:"resources"`
		Features  int                 `json:"features"`
		Fails     []zone.FetchFailure `json:"fails"`
		Path      string              `json:"path"`
		CreatedAt time.Time           `json:"created_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writer := h.NewLogWriter(w, r)

		result, err := h.zones.Run(r.Context())
		if err != nil {
			h.logger.Printf("HandleRefresh: failed to run export: %v", err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body: res{
				Resources: result.Resources,
				Features:  result.Features,
				Fails:     result.Fails,
				Path:      result.Path,
				CreatedAt: result.CreatedAt,
			},
		})
	}
}
