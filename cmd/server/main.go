// Package main is the entry point for the APEX sovereign risk service.
// It scores a fixed watchlist of sovereign entities on a composite 0-100
// stress index and serves the results (scores, rankings, comparisons,
// chart data, simulated intelligence feed) over HTTP.
//
// Startup sequence:
// 1. Load configuration from environment variables
// 2. Initialize logging
// 3. Build the watchlist provider and scoring engine
// 4. Wire the comparison, charts and intel services
// 5. Register the intel feed refresh job with the scheduler
// 6. Start the HTTP server
// 7. Wait for shutdown signal and stop gracefully
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apexintel/apex/internal/config"
	"github.com/apexintel/apex/internal/modules/charts"
	"github.com/apexintel/apex/internal/modules/comparison"
	"github.com/apexintel/apex/internal/modules/intel"
	"github.com/apexintel/apex/internal/modules/scoring"
	"github.com/apexintel/apex/internal/modules/watchlist"
	"github.com/apexintel/apex/internal/scheduler"
	"github.com/apexintel/apex/internal/server"
	"github.com/apexintel/apex/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().
		Str("scoring_mode", cfg.ScoringMode).
		Msg("Starting APEX")

	// The watchlist is the single injected data source; the engine and
	// every consumer read through it.
	provider := watchlist.NewProvider()
	engine := scoring.NewEngine(provider, scoring.Mode(cfg.ScoringMode), log)
	comparisonSvc := comparison.NewService(provider, engine, log)
	chartsSvc := charts.NewService(provider, engine, log)
	feed := intel.NewFeed(intel.NewGenerator(provider), cfg.IntelBatchSize, log)

	log.Info().
		Int("sovereigns", provider.Len()).
		Str("data_updated", provider.Freshness()).
		Msg("Watchlist loaded")

	sched := scheduler.New(log)
	schedule := fmt.Sprintf("@every %ds", cfg.IntelIntervalSeconds)
	if err := sched.AddJob(schedule, feed); err != nil {
		log.Fatal().Err(err).Msg("Failed to register intel feed job")
	}
	// Prime the feed so the first page load has messages beyond the boot
	// sequence.
	if err := sched.RunNow(feed); err != nil {
		log.Warn().Err(err).Msg("Initial intel feed refresh failed")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:        log,
		Port:       cfg.Port,
		DevMode:    cfg.DevMode,
		Watchlist:  provider,
		Engine:     engine,
		Comparison: comparisonSvc,
		Charts:     chartsSvc,
		Feed:       feed,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("APEX stopped")
}
