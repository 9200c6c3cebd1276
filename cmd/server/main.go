package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"natid/internal/nationalid/handler"
	nationalidmetrics "natid/internal/nationalid/metrics"
	"natid/internal/nationalid/service"
	"natid/internal/platform/config"
	"natid/internal/platform/httpserver"
	"natid/internal/platform/logger"
	"natid/internal/platform/metrics"
	httptransport "natid/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Decoding logic lives in internal/nationalid.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithEswatiniChecksum(cfg.EswatiniRequireChecksum),
		service.WithBatchConcurrency(cfg.BatchConcurrency),
	}
	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		reg := metrics.NewRegistry()
		opts = append(opts, service.WithMetrics(nationalidmetrics.NewWithRegisterer(reg)))
		metricsHandler = metrics.Handler(reg)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		NationalIDs:    handler.New(service.New(opts...), log),
		MetricsHandler: metricsHandler,
	})
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting natid",
		"addr", cfg.Addr,
		"eswatini_require_checksum", cfg.EswatiniRequireChecksum,
		"batch_concurrency", cfg.BatchConcurrency,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
