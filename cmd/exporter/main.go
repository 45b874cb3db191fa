package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rickgao/mdexport/internal/assemble"
	"github.com/rickgao/mdexport/internal/calendar"
	"github.com/rickgao/mdexport/internal/config"
	"github.com/rickgao/mdexport/internal/database"
	"github.com/rickgao/mdexport/internal/dispatch"
	"github.com/rickgao/mdexport/internal/export"
	"github.com/rickgao/mdexport/internal/metrics"
	"github.com/rickgao/mdexport/internal/version"
	"github.com/rickgao/mdexport/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/exporter.yaml", "path to config file")
	seed := flag.Uint64("seed", 0, "random seed (overrides replay.seed when non-zero)")
	flag.Parse()

	os.Exit(run(*configPath, *seed))
}

func run(configPath string, seedOverride uint64) int {
	// Bootstrap logger until the configured level is known
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err, "config", configPath)
		return 1
	}
	if seedOverride != 0 {
		cfg.Replay.Seed = seedOverride
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting exporter",
		"version", version.Version,
		"commit", version.Commit,
		"config", configPath,
	)

	start, _ := cfg.Calendar.StartDate()
	end, _ := cfg.Calendar.EndDate()
	today, _ := cfg.Calendar.TodayDate(time.Now())
	days := calendar.WorkingDays(start, end)

	logger.Info("configuration loaded",
		"input_dir", cfg.Paths.InputDir,
		"output_dir", cfg.Paths.OutputDir,
		"start", cfg.Calendar.Start,
		"end", cfg.Calendar.End,
		"today", today.Format(config.DateLayout),
		"days", len(days),
		"seed", cfg.Replay.Seed,
		"workers", cfg.Workers.Count,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	if cfg.Metrics.Port > 0 {
		srv := startMetricsServer(cfg.Metrics, reg, logger)
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	var ledger *writer.RunWriter
	if cfg.Ledger.Enabled {
		logger.Info("connecting to ledger database",
			"host", cfg.Ledger.Database.Host,
			"port", cfg.Ledger.Database.Port,
			"database", cfg.Ledger.Database.Name,
		)
		pool, err := database.Connect(ctx, cfg.Ledger.Database)
		if err != nil {
			logger.Error("failed to connect to ledger database", "error", err)
			return 1
		}
		defer pool.Close()

		ledger = writer.NewRunWriter(pool, uuid.New(), logger)
		if err := ledger.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare ledger", "error", err)
			return 1
		}
		logger.Info("ledger ready", "run_id", ledger.RunID())
	}

	exporter := export.New(export.Config{
		InputDir:  cfg.Paths.InputDir,
		OutputDir: cfg.Paths.OutputDir,
		Today:     today,
		Days:      days,
		Seed:      cfg.Replay.Seed,
		ChainSize: assemble.ChainSize{Min: cfg.Replay.MinOptions, Max: cfg.Replay.MaxOptions},
	}, m, logger)

	if err := exporter.Prepare(); err != nil {
		logger.Error("failed to prepare output directories", "error", err)
		return 1
	}

	equities, err := discover(filepath.Join(cfg.Paths.InputDir, export.EquitiesDir), logger)
	if err != nil {
		logger.Error("failed to list equities", "error", err)
		return 1
	}
	curves, err := discover(filepath.Join(cfg.Paths.InputDir, export.CurvesDir), logger)
	if err != nil {
		logger.Error("failed to list curves", "error", err)
		return 1
	}

	dcfg := dispatch.Config{Workers: cfg.Workers.Count}
	if cfg.Workers.Progress {
		dcfg.Progress = os.Stderr
	}
	d := dispatch.New(dcfg, exporter, logger)

	// Equities first, then curves
	summary := d.Run(ctx, dispatch.Jobs(export.KindEquity, equities))
	curveSummary := d.Run(ctx, dispatch.Jobs(export.KindCurve, curves))
	summary.Results = append(summary.Results, curveSummary.Results...)
	summary.Duration += curveSummary.Duration

	exit := 0
	if ledger != nil {
		if err := ledger.Write(context.WithoutCancel(ctx), summary.Results, time.Now()); err != nil {
			logger.Error("failed to write ledger", "error", err)
			exit = 1
		}
	}

	failed := summary.Failed()
	for _, r := range failed {
		logger.Error("unit failed", "kind", r.Kind, "unit", r.ID, "error", r.Err)
	}

	logger.Info("export complete",
		"equities", len(equities),
		"curves", len(curves),
		"succeeded", summary.Succeeded(),
		"failed", len(failed),
		"duration", summary.Duration,
	)

	if len(failed) > 0 {
		exit = 1
	}
	return exit
}

// discover lists units under dir. A missing directory means no units.
func discover(dir string, logger *slog.Logger) ([]string, error) {
	ids, err := dispatch.Discover(dir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("input directory not found, skipping", "dir", dir)
		return nil, nil
	}
	return ids, err
}

func startMetricsServer(cfg config.MetricsConfig, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, metrics.Handler(reg))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	go func() {
		logger.Info("starting metrics server", "port", cfg.Port, "path", cfg.Path)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return srv
}
