package scoring

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/domain"
)

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	engine *Engine
	log    zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(engine *Engine, log zerolog.Logger) *Handlers {
	return &Handlers{
		engine: engine,
		log:    log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// RegisterRoutes mounts the scoring routes on the given router
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/scores", h.handleScoreAll)
	r.Get("/api/scores/{code}", h.handleScore)
	r.Post("/api/scores/{code}/simulate", h.handleSimulate)
	r.Get("/api/rankings", h.handleRankings)
	r.Get("/api/averages", h.handleAverages)
	r.Get("/api/statistics", h.handleStatistics)
	r.Get("/api/insights/{code}", h.handleInsight)
	r.Get("/api/tooltips", h.handleTooltips)
	r.Get("/api/tooltips/{key}", h.handleTooltip)
}

// SimulateRequest carries optional metric overrides for what-if scoring
type SimulateRequest struct {
	DebtToGDP     *float64 `json:"debt_to_gdp,omitempty"`
	InflationRate *float64 `json:"inflation_rate,omitempty"`
}

// handleScoreAll handles GET /api/scores
func (h *Handlers) handleScoreAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.ScoreAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to score watchlist")
		h.writeError(w, "Failed to score watchlist", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// handleScore handles GET /api/scores/{code}?mode=zscore|bounds
func (h *Handlers) handleScore(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	opts := Options{}
	switch r.URL.Query().Get("mode") {
	case "":
		// engine default
	case "zscore":
		opts.Mode = ModeZScore
	case "bounds":
		opts.Mode = ModeBounds
	default:
		h.writeError(w, "Invalid mode (must be zscore or bounds)", http.StatusBadRequest)
		return
	}

	result, err := h.engine.ScoreByCode(code, opts)
	if err != nil {
		h.handleEngineError(w, code, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// handleSimulate handles POST /api/scores/{code}/simulate
func (h *Handlers) handleSimulate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode simulate request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.engine.Simulate(code, req.DebtToGDP, req.InflationRate)
	if err != nil {
		h.handleEngineError(w, code, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// handleRankings handles GET /api/rankings?order=asc|desc
// asc is the stress ranking (worst first); desc is best-first (default).
func (h *Handlers) handleRankings(w http.ResponseWriter, r *http.Request) {
	var results []Result
	var err error

	switch r.URL.Query().Get("order") {
	case "asc":
		results, err = h.engine.StressRanked()
	case "", "desc":
		results, err = h.engine.Ranked()
	default:
		h.writeError(w, "Invalid order (must be asc or desc)", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.log.Error().Err(err).Msg("Failed to rank watchlist")
		h.writeError(w, "Failed to rank watchlist", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// handleAverages handles GET /api/averages
func (h *Handlers) handleAverages(w http.ResponseWriter, r *http.Request) {
	averages, err := h.engine.Averages()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute averages")
		h.writeError(w, "Failed to compute averages", http.StatusInternalServerError)
		return
	}

	// Callers may request a single aggregate by either key spelling.
	if label := r.URL.Query().Get("label"); label != "" {
		value, ok := averages.ByLabel(label)
		if !ok {
			h.writeError(w, "Unknown average label", http.StatusNotFound)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]float64{"value": value})
		return
	}

	h.writeJSON(w, http.StatusOK, averages)
}

// handleStatistics handles GET /api/statistics
func (h *Handlers) handleStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.engine.Statistics()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute statistics")
		h.writeError(w, "Failed to compute statistics", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleInsight handles GET /api/insights/{code}
func (h *Handlers) handleInsight(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	insight, err := h.engine.Insight(code)
	if err != nil {
		h.handleEngineError(w, code, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insight)
}

// handleTooltips handles GET /api/tooltips
func (h *Handlers) handleTooltips(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, Tooltips())
}

// handleTooltip handles GET /api/tooltips/{key}
func (h *Handlers) handleTooltip(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	text, ok := Tooltip(key)
	if !ok {
		h.writeError(w, "Unknown tooltip key", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"key": key, "text": text})
}

// handleEngineError maps engine errors to HTTP status codes. NotFound
// surfaces unchanged per the propagation policy; nothing is retried.
func (h *Handlers) handleEngineError(w http.ResponseWriter, code string, err error) {
	if errors.Is(err, domain.ErrSovereignNotFound) {
		h.writeError(w, "Unknown sovereign: "+code, http.StatusNotFound)
		return
	}
	h.log.Error().Err(err).Str("code", code).Msg("Scoring failed")
	h.writeError(w, "Scoring failed", http.StatusInternalServerError)
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
