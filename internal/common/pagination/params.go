package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params is the client's paging request after parsing.
type Params struct {
	Page  int
	Limit int
}

// ParseQueryParams reads the "page" and "limit" query parameters. Missing
// parameters take the configured defaults; present-but-invalid ones are an
// error rather than a silent correction, so clients notice broken queries.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{Page: config.DefaultPage, Limit: config.DefaultLimit}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
