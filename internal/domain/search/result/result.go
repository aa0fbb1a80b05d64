// Package result holds the outcome of an index search before hydration.
package result

import "github.com/kailas-cloud/heritagegraph/internal/domain"

// Page is one page of hits: document ids in hit order, the total hit count
// and facet buckets per category.
type Page struct {
	totalCount int
	ids        []string
	filters    map[string][]domain.SearchResultFilter
}

// New creates a page.
func New(totalCount int, ids []string, filters map[string][]domain.SearchResultFilter) Page {
	return Page{totalCount: totalCount, ids: ids, filters: filters}
}

// TotalCount returns the number of matching documents in the index.
func (p *Page) TotalCount() int { return p.totalCount }

// IDs returns the hit ids in index order.
func (p *Page) IDs() []string { return p.ids }

// Filters returns the facet buckets per category.
func (p *Page) Filters() map[string][]domain.SearchResultFilter { return p.filters }
