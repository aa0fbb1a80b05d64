// Package search runs faceted searches against the search index.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/result"
	"github.com/kailas-cloud/heritagegraph/internal/logger"
	"github.com/kailas-cloud/heritagegraph/internal/metrics"
)

// FacetSize is the number of buckets requested per facet category.
const FacetSize = 10000

// store is the consumer interface for the search index (ISP).
type store interface {
	Search(ctx context.Context, index string, req *db.SearchRequest) (*db.SearchResponse, error)
}

// Repo implements usecase/search.Index.
type Repo struct {
	store store
	index string
}

// New creates a search repository over index.
func New(s store, index string) (*Repo, error) {
	if err := db.ValidateIndexName(index); err != nil {
		return nil, err
	}
	return &Repo{store: s, index: index}, nil
}

// Search returns one page of hit ids with facet counts. Every category of
// the request's profile is present in the facets, possibly empty.
func (r *Repo) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	entity := req.Profile().Entity

	body, err := BuildRequest(req)
	if err != nil {
		return result.Page{}, fmt.Errorf("build %s search: %w", entity, err)
	}

	start := time.Now()
	resp, err := r.store.Search(ctx, r.index, body)
	metrics.SearchRequestDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	metrics.SearchRequestsTotal.WithLabelValues(entity, metrics.Status(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Error("search failed",
			zap.String("entity", entity),
			zap.Error(err),
		)
		return result.Page{}, fmt.Errorf("search %s: %w", entity, err)
	}

	ids := make([]string, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		ids = append(ids, hitID(h))
	}

	return result.New(resp.Hits.Total.Value, ids, facets(req.Profile(), resp.Aggregations)), nil
}

// BuildRequest translates req into a search body. The free-text query
// scores, the document type and selected facet values filter. Results are
// ordered by the requested key with the document id as tiebreaker so that
// consecutive pages never overlap.
func BuildRequest(req *request.Request) (*db.SearchRequest, error) {
	p := req.Profile()
	field, ok := p.SortField(req.SortBy())
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be sorted by %q",
			domain.ErrInvalidSearchOptions, p.Entity, req.SortBy())
	}

	b := db.NewSearch().
		Page(req.Offset(), req.Limit()).
		Sort(field, string(req.SortOrder())).
		Sort(profile.FieldID, string(domain.SortAsc)).
		Filter(db.Term(profile.FieldType, p.DocumentType))

	if !req.IsMatchAll() {
		b.Must(db.SimpleQueryString(req.Query(), p.TextFields...))
	}
	for _, c := range req.Selection().Conditions() {
		b.Filter(db.Term(c.Key(), c.Match()))
	}
	for _, c := range p.Categories {
		b.Terms(c.Name, c.Field, FacetSize)
	}
	return b.Build()
}

type source struct {
	ID string `json:"@id"`
}

// hitID prefers the document's own identifier over the index key.
func hitID(h db.Hit) string {
	var s source
	if len(h.Source) > 0 && json.Unmarshal(h.Source, &s) == nil && s.ID != "" {
		return s.ID
	}
	return h.ID
}

func facets(p profile.Profile, aggs map[string]db.AggregationResult) map[string][]domain.SearchResultFilter {
	out := make(map[string][]domain.SearchResultFilter, len(p.Categories))
	for _, c := range p.Categories {
		buckets := aggs[c.Name].Buckets
		filters := make([]domain.SearchResultFilter, 0, len(buckets))
		for _, b := range buckets {
			name := b.Key
			filters = append(filters, domain.SearchResultFilter{ID: b.Key, Name: &name, TotalCount: b.DocCount})
		}
		out[c.Name] = filters
	}
	return out
}
