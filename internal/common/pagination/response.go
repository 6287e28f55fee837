package pagination

// Response is the envelope every paged listing returns: the page's items
// under "data" plus the position metadata under "pagination". T is the
// handler's DTO type, so article and user listings share one shape.
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse pairs a page of items with its metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{Data: data, Pagination: metadata}
}
