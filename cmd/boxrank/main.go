package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/boxrank/internal/api"
	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/config"
	"github.com/MikeSquared-Agency/boxrank/internal/hermes"
	"github.com/MikeSquared-Agency/boxrank/internal/presets"
	"github.com/MikeSquared-Agency/boxrank/internal/report"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
	"github.com/MikeSquared-Agency/boxrank/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	reportOnly := flag.Bool("report", false, "print the preset test suite and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	scorer, err := newScorer(cfg, logger)
	if err != nil {
		logger.Error("invalid scoring config", "error", err)
		os.Exit(1)
	}

	if *reportOnly {
		if err := report.Suite(os.Stdout, cat, scorer, presets.All()); err != nil {
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run history
	var db store.Store
	if cfg.Database.URL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		db = pg
		logger.Info("connected to database")
	} else {
		db = store.NewMemoryStore(cfg.Server.HistoryLimit)
		logger.Info("no database configured, keeping run history in memory", "max_runs", cfg.Server.HistoryLimit)
	}
	defer db.Close()

	// Hermes (optional)
	var hermesClient hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}

	// API server
	router := api.NewRouter(cat, scorer, db, hermesClient, api.RouterConfig{
		RateLimit:    cfg.Server.RateLimit,
		HistoryLimit: cfg.Server.HistoryLimit,
	}, logger)
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler:           api.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API server starting",
			"port", cfg.Server.Port,
			"devices", len(cat.Devices),
			"policy", scorer.Policy().Mode,
		)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Logging.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// loadCatalog reads the configured catalog file, or falls back to the built-in table.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

func newScorer(cfg *config.Config, logger *slog.Logger) (*scoring.Scorer, error) {
	mode, err := scoring.ParsePenaltyMode(cfg.Scoring.PenaltyPolicy)
	if err != nil {
		return nil, err
	}
	policy := scoring.Policy{Mode: mode, Penalty: cfg.Scoring.CriticalMissPenalty}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return scoring.NewScorer(policy, logger), nil
}
