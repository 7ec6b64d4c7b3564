package watchlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/domain"
)

// Handlers provides HTTP handlers for the watchlist module
type Handlers struct {
	provider *Provider
	log      zerolog.Logger
}

// NewHandlers creates a new watchlist handlers instance
func NewHandlers(provider *Provider, log zerolog.Logger) *Handlers {
	return &Handlers{
		provider: provider,
		log:      log.With().Str("module", "watchlist_handlers").Logger(),
	}
}

// RegisterRoutes mounts the watchlist routes on the given router
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/watchlist", h.handleList)
	r.Get("/api/watchlist/{code}", h.handleGet)
}

// handleList handles GET /api/watchlist?category=G7|BRICS|FRONTIER
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var rows interface{}
	if category != "" {
		rows = h.provider.ByCategory(domain.Category(category))
	} else {
		rows = h.provider.All()
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"sovereigns":   rows,
		"data_updated": h.provider.Freshness(),
	})
}

// handleGet handles GET /api/watchlist/{code}
func (h *Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	sovereign, err := h.provider.ByCode(code)
	if err != nil {
		if errors.Is(err, domain.ErrSovereignNotFound) {
			h.writeError(w, "Unknown sovereign: "+code, http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("code", code).Msg("Watchlist lookup failed")
		h.writeError(w, "Lookup failed", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, sovereign)
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
