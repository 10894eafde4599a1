package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/flight-traffic-service/internal/adapter/aviationstack"
	httpadapter "github.com/couchcryptid/flight-traffic-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/flight-traffic-service/internal/adapter/kafka"
	"github.com/couchcryptid/flight-traffic-service/internal/config"
	"github.com/couchcryptid/flight-traffic-service/internal/observability"
	"github.com/couchcryptid/flight-traffic-service/internal/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if cfg.APIKey == "" {
		logger.Warn("AVIATIONSTACK_KEY is not set; schedule fetches will fail until it is configured")
	}

	fetcher := aviationstack.NewClient(cfg.APIKey, cfg.UpstreamTimeout, cfg.UpstreamLimit, metrics, logger)

	// Snapshot publishing is optional (flagged via KAFKA_BROKERS / KAFKA_ENABLED).
	var publisher schedule.SnapshotPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka snapshot publishing enabled", "topic", cfg.KafkaSnapshotTopic)
	} else {
		logger.Info("kafka snapshot publishing disabled")
	}

	svc := schedule.NewService(fetcher, publisher, cfg.BucketLocation, cfg.APIKey != "", logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, cfg.DaysAhead, cfg.BucketLocation, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
