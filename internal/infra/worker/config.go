// Package worker holds the building blocks of the subscription sweeper: its
// configuration, Prometheus metrics and the probe server the scheduler runs
// next to.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	pkgconfig "newsdesk/pkg/config"
)

// Config controls the sweeper schedule and its side servers.
type Config struct {
	// CronSchedule is a five-field cron expression for sweep runs.
	CronSchedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// SweepTimeout bounds a single sweep run.
	SweepTimeout time.Duration

	// HealthPort serves the liveness and readiness probes.
	HealthPort int

	// MetricsPort serves the Prometheus scrape endpoint.
	MetricsPort int
}

// DefaultConfig returns the production defaults: sweep every ten minutes in
// UTC, with the probe and scrape servers on their conventional ports.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "*/10 * * * *",
		Timezone:     "UTC",
		SweepTimeout: 5 * time.Minute,
		HealthPort:   9091,
		MetricsPort:  9092,
	}
}

// LoadConfigFromEnv reads the sweeper configuration from the environment,
// falling back field by field to the defaults when a value is missing or
// invalid. The worker must come up even with a broken environment, so this
// never returns an error for bad values, only logs them.
func LoadConfigFromEnv(logger *slog.Logger) Config {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule: pkgconfig.GetEnvString("SWEEP_CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:     pkgconfig.GetEnvString("SWEEP_TIMEZONE", defaults.Timezone),
		SweepTimeout: pkgconfig.GetEnvDuration("SWEEP_TIMEOUT", defaults.SweepTimeout),
		HealthPort:   pkgconfig.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
		MetricsPort:  pkgconfig.GetEnvInt("WORKER_METRICS_PORT", defaults.MetricsPort),
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid sweeper configuration, using defaults",
			slog.String("error", err.Error()))
		return defaults
	}
	return cfg
}

// Validate checks every field; the cron expression is parsed with the same
// parser the scheduler uses.
func (c Config) Validate() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(c.CronSchedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", c.CronSchedule, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if err := pkgconfig.ValidatePositiveDuration(c.SweepTimeout); err != nil {
		return fmt.Errorf("invalid sweep timeout: %w", err)
	}
	for _, port := range []int{c.HealthPort, c.MetricsPort} {
		if port < 1024 || port > 65535 {
			return fmt.Errorf("port %d outside allowed range 1024-65535", port)
		}
	}
	if c.HealthPort == c.MetricsPort {
		return fmt.Errorf("health and metrics ports must differ, both %d", c.HealthPort)
	}
	return nil
}
