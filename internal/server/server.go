// Package server provides the HTTP server and routing for the APEX
// sovereign risk service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/apexintel/apex/internal/modules/charts"
	"github.com/apexintel/apex/internal/modules/comparison"
	"github.com/apexintel/apex/internal/modules/intel"
	"github.com/apexintel/apex/internal/modules/scoring"
	"github.com/apexintel/apex/internal/modules/watchlist"
)

// Config holds server configuration
type Config struct {
	Log        zerolog.Logger
	Port       int
	DevMode    bool
	Watchlist  *watchlist.Provider
	Engine     *scoring.Engine
	Comparison *comparison.Service
	Charts     *charts.Service
	Feed       *intel.Feed
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server and mounts all module routes
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		systemHandlers: NewSystemHandlers(cfg.Log),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	allowedOrigins := []string{"https://*", "http://*"}
	if cfg.DevMode {
		allowedOrigins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/system/status", s.systemHandlers.HandleStatus)

	watchlist.NewHandlers(cfg.Watchlist, cfg.Log).RegisterRoutes(s.router)
	scoring.NewHandlers(cfg.Engine, cfg.Log).RegisterRoutes(s.router)
	comparison.NewHandlers(cfg.Comparison, cfg.Log).RegisterRoutes(s.router)
	charts.NewHandlers(cfg.Charts, cfg.Log).RegisterRoutes(s.router)
	intel.NewHandlers(cfg.Feed, cfg.Log).RegisterRoutes(s.router)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Router exposes the chi router (used by handler tests)
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests. Blocks until the server
// stops.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// requestLogger logs each request at debug level
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}
