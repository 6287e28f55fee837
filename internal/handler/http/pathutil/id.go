// Package pathutil provides helpers for extracting and normalizing values
// from URL paths.
package pathutil

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractSegmentID parses the named ServeMux wildcard segment as an int64 ID.
// IDs are positive; a missing, non-numeric or non-positive segment returns
// ErrInvalidID.
//
// Example:
//
//	// route: "GET /articles/{id}"
//	id, err := pathutil.ExtractSegmentID(r, "id")
func ExtractSegmentID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
