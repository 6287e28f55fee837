package pagination

// Metadata describes where a page sits inside the full result set. It is
// serialized verbatim into the "pagination" field of list responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
