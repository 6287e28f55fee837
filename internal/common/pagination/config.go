// Package pagination backs the paged listings of the backend: the public
// article catalogue, the admin article dashboard and the reader directory.
// It covers query parsing, offset math, response envelopes and metrics.
package pagination

import (
	"os"
	"strconv"
)

// Config bounds what a client may request per page.
type Config struct {
	DefaultPage  int // page assumed when the query omits one
	DefaultLimit int // page size assumed when the query omits one
	MaxLimit     int // hard cap on the requested page size
}

// DefaultConfig returns the built-in bounds: page 1, 20 per page, 100 max.
func DefaultConfig() Config {
	return Config{DefaultPage: 1, DefaultLimit: 20, MaxLimit: 100}
}

// LoadFromEnv reads PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT and
// PAGINATION_MAX_LIMIT. Unset or unparseable values fall back to the
// built-in defaults, so a bad deployment cannot disable listings.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  intFromEnv("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: intFromEnv("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     intFromEnv("PAGINATION_MAX_LIMIT", 100),
	}
}

func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
