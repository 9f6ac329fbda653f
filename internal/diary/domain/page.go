package domain

// PageSize is the fixed window size shared by every "find many" operation:
// post listings, the following feed, liked posts, follower/following lists
// and user search all page in steps of ten.
const PageSize = 10

// Page is a 1-indexed page number. Values below 1 normalize to 1, so an
// omitted query parameter defaults to the first page.
type Page int

// Normalize clamps the page to its minimum of 1.
func (p Page) Normalize() Page {
	if p < 1 {
		return 1
	}
	return p
}

// Offset converts the page to a row offset: (page - 1) * PageSize.
func (p Page) Offset() int {
	return (int(p.Normalize()) - 1) * PageSize
}

// Paginated is the uniform listing response shape.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginated wraps a result window with its totals. TotalPages is
// ceil(total / PageSize); items is never nil in the JSON output.
func NewPaginated[T any](items []T, total int) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		TotalPages: (total + PageSize - 1) / PageSize,
	}
}
