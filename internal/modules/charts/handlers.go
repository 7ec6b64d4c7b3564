package charts

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the charts module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new charts handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "charts_handlers").Logger(),
	}
}

// RegisterRoutes mounts the charts routes on the given router
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/heatmap", h.handleHeatmap)
	r.Get("/api/map", h.handleMap)
}

// handleHeatmap handles GET /api/heatmap?selected={code}
func (h *Handlers) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.HeatmapRows(r.URL.Query().Get("selected"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build heatmap rows")
		h.writeError(w, "Failed to build heatmap", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}

// handleMap handles GET /api/map?selected={code}
func (h *Handlers) handleMap(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.MapPoints(r.URL.Query().Get("selected"))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build map points")
		h.writeError(w, "Failed to build map", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, points)
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response
func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
