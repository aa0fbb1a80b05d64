// Package sorting names the sort keys offered by search.
package sorting

import "github.com/kailas-cloud/heritagegraph/internal/domain"

// Key is a sort key.
type Key string

// Sort keys.
const (
	Relevance   Key = "relevance"
	Name        Key = "name"
	DateCreated Key = "dateCreated"
)

// DefaultOrder is descending for relevance and ascending for everything else.
func (k Key) DefaultOrder() domain.SortOrder {
	if k == Relevance {
		return domain.SortDesc
	}
	return domain.SortAsc
}

// ParseOrder parses "asc" or "desc".
func ParseOrder(s string) (domain.SortOrder, bool) {
	switch domain.SortOrder(s) {
	case domain.SortAsc, domain.SortDesc:
		return domain.SortOrder(s), true
	default:
		return "", false
	}
}
