package config

import (
	"log/slog"
	"time"
)

// LoginRateLimit is the per-IP limit applied to the token endpoint.
// Credential-less token issuance is the obvious brute-force target, so the
// window is short and the limit low.
type LoginRateLimit struct {
	// Limit is the number of attempts allowed per window.
	Limit int

	// Window is the sliding window the attempts are counted in.
	Window time.Duration
}

// DefaultLoginRateLimit allows 10 attempts per minute per IP.
func DefaultLoginRateLimit() LoginRateLimit {
	return LoginRateLimit{Limit: 10, Window: time.Minute}
}

// LoadLoginRateLimit reads LOGIN_RATELIMIT_LIMIT and LOGIN_RATELIMIT_WINDOW,
// falling back to the defaults when a value is missing or out of range.
func LoadLoginRateLimit() LoginRateLimit {
	defaults := DefaultLoginRateLimit()
	cfg := LoginRateLimit{
		Limit:  GetEnvInt("LOGIN_RATELIMIT_LIMIT", defaults.Limit),
		Window: GetEnvDuration("LOGIN_RATELIMIT_WINDOW", defaults.Window),
	}

	if cfg.Limit <= 0 {
		slog.Warn("invalid LOGIN_RATELIMIT_LIMIT, using default",
			slog.Int("value", cfg.Limit),
			slog.Int("default", defaults.Limit))
		cfg.Limit = defaults.Limit
	}
	if err := ValidateDurationRange(cfg.Window, time.Second, time.Hour); err != nil {
		slog.Warn("invalid LOGIN_RATELIMIT_WINDOW, using default",
			slog.String("error", err.Error()),
			slog.String("default", defaults.Window.String()))
		cfg.Window = defaults.Window
	}
	return cfg
}
