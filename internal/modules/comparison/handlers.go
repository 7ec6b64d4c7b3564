package comparison

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/domain"
)

// Handlers provides HTTP handlers for the comparison module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new comparison handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "comparison_handlers").Logger(),
	}
}

// RegisterRoutes mounts the comparison routes on the given router
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/comparison", h.handleCompare)
}

// handleCompare handles GET /api/comparison?a={code}&b={code}
func (h *Handlers) handleCompare(w http.ResponseWriter, r *http.Request) {
	codeA := r.URL.Query().Get("a")
	codeB := r.URL.Query().Get("b")
	if codeA == "" || codeB == "" {
		h.writeError(w, "Both a and b query parameters are required", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Compare(codeA, codeB)
	if err != nil {
		if errors.Is(err, domain.ErrSovereignNotFound) {
			h.writeError(w, "Unknown sovereign", http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("a", codeA).Str("b", codeB).Msg("Comparison failed")
		h.writeError(w, "Comparison failed", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
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
