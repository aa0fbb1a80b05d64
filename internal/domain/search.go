package domain

// SortOrder is the direction of a search sort.
type SortOrder string

// Sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchResultFilter is one facet bucket: a distinct field value and its count.
type SearchResultFilter struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	TotalCount int     `json:"totalCount"`
}

// SearchResult is a page of hydrated records with facet counts.
// TotalCount is the index's count; Items may be shorter when the graph store
// lacks records the index still returns.
type SearchResult[T any] struct {
	TotalCount int                             `json:"totalCount"`
	Offset     int                             `json:"offset"`
	Limit      int                             `json:"limit"`
	SortBy     string                          `json:"sortBy"`
	SortOrder  SortOrder                       `json:"sortOrder"`
	Items      []T                             `json:"items"`
	Filters    map[string][]SearchResultFilter `json:"filters"`
}
