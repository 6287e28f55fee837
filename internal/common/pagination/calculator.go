package pagination

// CalculateOffset converts a 1-based page number into the SQL OFFSET for
// that page: page 1 starts at row 0, page 2 at row limit, and so on.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages reports how many pages a result set spans, rounding
// up so a trailing partial page still counts. An empty set reports one
// page, which keeps "page 1 of 1" rendering sane for empty catalogues.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
