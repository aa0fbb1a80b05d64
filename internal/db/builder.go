package db

import "errors"

// SearchBuilder is a fluent builder for search requests.
type SearchBuilder struct {
	req SearchRequest
}

// NewSearch starts building a search request that counts every hit.
func NewSearch() *SearchBuilder {
	return &SearchBuilder{req: SearchRequest{TrackTotalHits: true}}
}

// Page sets the offset and page size.
func (b *SearchBuilder) Page(from, size int) *SearchBuilder {
	b.req.From = from
	b.req.Size = size
	return b
}

// Sort appends a sort key. Keys apply in the order they are added.
func (b *SearchBuilder) Sort(field, order string) *SearchBuilder {
	b.req.Sort = append(b.req.Sort, map[string]string{field: order})
	return b
}

// Must adds scoring clauses.
func (b *SearchBuilder) Must(clauses ...Clause) *SearchBuilder {
	b.req.Query.Bool.Must = append(b.req.Query.Bool.Must, clauses...)
	return b
}

// Filter adds non-scoring clauses.
func (b *SearchBuilder) Filter(clauses ...Clause) *SearchBuilder {
	b.req.Query.Bool.Filter = append(b.req.Query.Bool.Filter, clauses...)
	return b
}

// Terms adds a terms aggregation named name.
func (b *SearchBuilder) Terms(name, field string, size int) *SearchBuilder {
	if b.req.Aggregations == nil {
		b.req.Aggregations = make(map[string]Aggregation)
	}
	b.req.Aggregations[name] = Aggregation{Terms: TermsAggregation{Field: field, Size: size}}
	return b
}

// Build validates and returns the request. A request without scoring
// clauses matches every document.
func (b *SearchBuilder) Build() (*SearchRequest, error) {
	if b.req.From < 0 {
		return nil, errors.New("from must not be negative")
	}
	if b.req.Size < 0 {
		return nil, errors.New("size must not be negative")
	}
	for name, agg := range b.req.Aggregations {
		if agg.Terms.Field == "" {
			return nil, errors.New("aggregation " + name + " has no field")
		}
		if agg.Terms.Size <= 0 {
			return nil, errors.New("aggregation " + name + " requires positive size")
		}
	}
	req := b.req
	if len(req.Query.Bool.Must) == 0 {
		req.Query.Bool.Must = []Clause{MatchAll()}
	}
	return &req, nil
}
