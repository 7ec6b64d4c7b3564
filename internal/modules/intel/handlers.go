package intel

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers provides HTTP handlers for the intel module
type Handlers struct {
	feed *Feed
	log  zerolog.Logger
}

// NewHandlers creates a new intel handlers instance
func NewHandlers(feed *Feed, log zerolog.Logger) *Handlers {
	return &Handlers{
		feed: feed,
		log:  log.With().Str("module", "intel_handlers").Logger(),
	}
}

// RegisterRoutes mounts the intel routes on the given router
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/intel/log", h.handleLog)
	r.Get("/api/intel/stream", h.handleStream)
}

// handleLog handles GET /api/intel/log?count=n
func (h *Handlers) handleLog(w http.ResponseWriter, r *http.Request) {
	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.writeError(w, "Invalid count", http.StatusBadRequest)
			return
		}
		count = n
	}
	h.writeJSON(w, http.StatusOK, h.feed.Recent(count))
}

// handleStream handles GET /api/intel/stream (SSE). Each refresh batch is
// pushed as one "intel" event.
func (h *Handlers) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := h.feed.Subscribe()
	defer h.feed.Unsubscribe(sub)

	// Send the current buffer immediately so clients render without
	// waiting for the next refresh.
	if err := writeEvent(w, h.feed.Recent(0)); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case batch := <-sub:
			if err := writeEvent(w, batch); err != nil {
				h.log.Debug().Err(err).Msg("Intel stream client disconnected")
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, batch []Message) error {
	payload, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: intel\ndata: %s\n\n", payload)
	return err
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
