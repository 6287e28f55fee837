package worker

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SWEEP_CRON_SCHEDULE", "0 * * * *")
	t.Setenv("SWEEP_TIMEZONE", "America/New_York")
	t.Setenv("SWEEP_TIMEOUT", "90s")
	t.Setenv("WORKER_HEALTH_PORT", "9191")
	t.Setenv("WORKER_METRICS_PORT", "9192")

	cfg := LoadConfigFromEnv(discard())

	if cfg.CronSchedule != "0 * * * *" {
		t.Errorf("CronSchedule = %q", cfg.CronSchedule)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.SweepTimeout != 90*time.Second {
		t.Errorf("SweepTimeout = %v", cfg.SweepTimeout)
	}
	if cfg.HealthPort != 9191 || cfg.MetricsPort != 9192 {
		t.Errorf("ports = %d/%d", cfg.HealthPort, cfg.MetricsPort)
	}
}

func TestLoadConfigFromEnv_FallsBackOnInvalid(t *testing.T) {
	t.Setenv("SWEEP_CRON_SCHEDULE", "not a cron line at all")

	cfg := LoadConfigFromEnv(discard())

	if cfg != DefaultConfig() {
		t.Errorf("invalid env should yield defaults, got %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad cron", mutate: func(c *Config) { c.CronSchedule = "61 * * * *" }},
		{name: "six fields", mutate: func(c *Config) { c.CronSchedule = "* * * * * *" }},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{name: "zero timeout", mutate: func(c *Config) { c.SweepTimeout = 0 }},
		{name: "privileged port", mutate: func(c *Config) { c.HealthPort = 80 }},
		{name: "port clash", mutate: func(c *Config) { c.MetricsPort = c.HealthPort }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error, got nil")
			}
		})
	}
}
