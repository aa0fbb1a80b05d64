// Package search combines index searches with record hydration from the
// triple store.
package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
	"github.com/kailas-cloud/heritagegraph/internal/logger"
	"github.com/kailas-cloud/heritagegraph/internal/metrics"
)

// Service searches one entity family. The index decides which records
// match and in which order; the triple store supplies their content.
type Service[T any] struct {
	profile profile.Profile
	index   Index
	records Records[T]
}

// New creates a search service for the entity family described by p.
func New[T any](p profile.Profile, index Index, records Records[T]) *Service[T] {
	return &Service[T]{profile: p, index: index, records: records}
}

// Profile returns the search layout of the entity family.
func (s *Service[T]) Profile() profile.Profile { return s.profile }

// Search validates o, runs the search and hydrates the hits in hit order.
// Hits the triple store does not know are left out of Items while
// TotalCount keeps the index's count.
func (s *Service[T]) Search(ctx context.Context, o request.Options) (domain.SearchResult[T], error) {
	req, err := request.New(s.profile, o)
	if err != nil {
		return domain.SearchResult[T]{}, err
	}

	page, err := s.index.Search(ctx, &req)
	if err != nil {
		return domain.SearchResult[T]{}, err
	}

	items, err := s.records.GetByIDs(ctx, req.Locale(), page.IDs())
	if err != nil {
		return domain.SearchResult[T]{}, fmt.Errorf("hydrate %s: %w", s.profile.Entity, err)
	}
	if items == nil {
		items = []T{}
	}

	if gaps := len(page.IDs()) - len(items); gaps > 0 {
		metrics.HydrationGapsTotal.WithLabelValues(s.profile.Entity).Add(float64(gaps))
		logger.FromContext(ctx).Warn("search hits missing from triple store",
			zap.String("entity", s.profile.Entity),
			zap.Int("hits", len(page.IDs())),
			zap.Int("missing", gaps),
		)
	}

	return domain.SearchResult[T]{
		TotalCount: page.TotalCount(),
		Offset:     req.Offset(),
		Limit:      req.Limit(),
		SortBy:     string(req.SortBy()),
		SortOrder:  req.SortOrder(),
		Items:      items,
		Filters:    page.Filters(),
	}, nil
}
