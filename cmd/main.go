package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "adrelay/internal/adapter/http"
	"adrelay/internal/adapter/kafka"
	"adrelay/internal/adapter/memory"
	"adrelay/internal/adapter/postgres"
	redisadapter "adrelay/internal/adapter/redis"
	"adrelay/internal/adapter/usecase"
	"adrelay/internal/config"
	"adrelay/internal/config/configs"
	"adrelay/internal/core/port"
	"adrelay/internal/db"
	"adrelay/internal/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

// main is the entry point of the adrelay service. It loads configuration,
// optionally runs database migrations, wires the configured stores, then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	var pool *pgxpool.Pool
	if cfg.Store.NeedsPostgres() {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		var err error
		pool, err = db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
	}

	var campaigns port.CampaignStore
	switch cfg.Store.Campaigns {
	case configs.BackendPostgres:
		campaigns = postgres.NewCampaignStore(pool)
	case configs.BackendMemory:
		logger.Warn("using in-memory campaign store; budgets are not shared between instances")
		campaigns = memory.NewCampaignStore()
	}

	var viewers port.ViewerLedger
	switch cfg.Store.Viewers {
	case configs.BackendPostgres:
		viewers = postgres.NewViewerLedger(pool)
	case configs.BackendRedis:
		client, err := db.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer client.Close()
		viewers = redisadapter.NewViewerLedger(client, cfg.Redis.KeyPrefix)
	case configs.BackendMemory:
		logger.Warn("using in-memory viewer ledger; viewers are not shared between instances")
		viewers = memory.NewViewerLedger()
	}

	if cfg.Psql.Seed {
		n, err := db.Seed(ctx, campaigns)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo campaigns seeded", slog.Int("inserted", n))
	}

	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithMaxReselect(cfg.Auction.MaxReselect),
	}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{Brokers: cfg.Kafka.Brokers, ClientID: cfg.Kafka.ClientID})
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		publisher := kafka.NewVisitPublisher(producer, cfg.Kafka.Topic, logger)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka close error", slog.Any("error", err))
			}
		}()
		opts = append(opts, usecase.WithPublisher(publisher), usecase.WithEventQueueSize(cfg.Kafka.QueueSize))
		logger.Info("publishing visit events", slog.String("topic", cfg.Kafka.Topic))
	}
	svc := usecase.NewAdUseCase(campaigns, viewers, opts...)
	// Runs before the producer is closed.
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := svc.Close(flushCtx); err != nil {
			logger.Warn("visit events not flushed", slog.Any("error", err))
		}
	}()

	handlerOpts := httpadapter.Options{TrustProxy: cfg.HTTP.TrustProxy}
	if cfg.Metrics.Enabled {
		m := metrics.New(cfg.Metrics.Namespace)
		handlerOpts.Metrics = m
		handlerOpts.MetricsHandler = m.Handler()
	}
	handler := httpadapter.NewHandler(svc, logger, handlerOpts)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
