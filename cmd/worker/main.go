// The worker runs the subscription sweeper: a cron job that clears premium
// windows after they expire, so premium gating holds server-side even when
// clients never call the unsubscribe route. It serves health probes and
// Prometheus metrics next to the schedule.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/infra/worker"
	"newsdesk/internal/observability/logging"
	userUC "newsdesk/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg := worker.LoadConfigFromEnv(logger)
	logger.Info("sweeper starting",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	database := db.Open()
	defer func() { _ = database.Close() }()

	users := &userUC.Service{Repo: pgRepo.NewUserRepo(database)}

	registry := prometheus.NewRegistry()
	metrics := worker.NewMetrics(registry)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	health := worker.NewHealthServer(fmt.Sprintf(":%d", cfg.HealthPort), logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return health.Start(ctx) })
	group.Go(func() error {
		return runMetricsServer(ctx, fmt.Sprintf(":%d", cfg.MetricsPort), registry, logger)
	})
	group.Go(func() error { return runScheduler(ctx, cfg, users, metrics, logger, health) })

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		logger.Error("worker failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("worker stopped")
}

// runScheduler sweeps once immediately, then on the cron schedule until the
// context ends.
func runScheduler(ctx context.Context, cfg worker.Config, users *userUC.Service,
	metrics *worker.Metrics, logger *slog.Logger, health *worker.HealthServer) error {

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(cfg.CronSchedule, func() {
		sweep(ctx, cfg, users, metrics, logger)
	}); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}

	sweep(ctx, cfg, users, metrics, logger)

	scheduler.Start()
	health.SetReady(true)

	<-ctx.Done()
	health.SetReady(false)

	// let an in-flight sweep finish before reporting shutdown complete
	<-scheduler.Stop().Done()
	return nil
}

func sweep(ctx context.Context, cfg worker.Config, users *userUC.Service,
	metrics *worker.Metrics, logger *slog.Logger) {

	ctx, cancel := context.WithTimeout(ctx, cfg.SweepTimeout)
	defer cancel()

	start := time.Now()
	swept, err := users.SweepExpired(ctx)
	metrics.RecordRun(err, swept, time.Since(start))

	if err != nil {
		logger.Error("subscription sweep failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return
	}
	logger.Info("subscription sweep completed",
		slog.Int64("expired_cleared", swept),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
}
