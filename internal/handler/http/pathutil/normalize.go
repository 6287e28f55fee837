package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// Article routes with IDs
	{Pattern: regexp.MustCompile(`^/articles/\d+/views$`), Template: "/articles/:id/views"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/approve$`), Template: "/articles/:id/approve"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/decline$`), Template: "/articles/:id/decline"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/premium$`), Template: "/articles/:id/premium"},
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},

	// User routes keyed by numeric ID or email
	{Pattern: regexp.MustCompile(`^/users/\d+/admin$`), Template: "/users/:id/admin"},
	{Pattern: regexp.MustCompile(`^/users/[^/]+@[^/]+$`), Template: "/users/:email"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying an article ID or an account email are
// collapsed to a template; static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/articles/123")            // "/articles/:id"
//	NormalizePath("/articles/123/approve")    // "/articles/:id/approve"
//	NormalizePath("/users/a@example.com")     // "/users/:email"
//	NormalizePath("/articles/trending")       // "/articles/trending" (unchanged)
//	NormalizePath("/health")                  // "/health" (unchanged)
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/articles/123?page=1")     // "/articles/:id"
//	NormalizePath("/articles/123/")           // "/articles/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// static paths (/health, /metrics, /articles/trending, ...) pass through
	return path
}
