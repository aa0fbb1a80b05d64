// Package graph loads batches of resources from the triple store and
// projects them into domain records.
package graph

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/logger"
	"github.com/kailas-cloud/heritagegraph/internal/metrics"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
)

// store is the consumer interface for the triple store (ISP).
type store interface {
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// BuildFunc builds the by-identifier query for ids in locale.
type BuildFunc func(ids []string, locale domain.Locale) (string, error)

// Fetcher runs by-identifier queries for one entity family.
type Fetcher[T any] struct {
	store   store
	entity  string
	class   string
	build   BuildFunc
	project func(rdf.Resource) T
}

// NewFetcher creates a fetcher. Resources are projected only when the
// loaded graph types them with class.
func NewFetcher[T any](s store, entity, class string, build BuildFunc, project func(rdf.Resource) T) *Fetcher[T] {
	return &Fetcher[T]{store: s, entity: entity, class: class, build: build, project: project}
}

// Entity returns the entity family name.
func (f *Fetcher[T]) Entity() string { return f.entity }

// GetByIDs returns the records of ids in the order of ids. Identifiers that
// are not absolute IRIs or that the store does not know are skipped.
// No query is issued when no valid identifier remains.
func (f *Fetcher[T]) GetByIDs(ctx context.Context, locale domain.Locale, ids []string) ([]T, error) {
	valid := domain.FilterAbsoluteIRIs(ids)
	if len(valid) == 0 {
		return []T{}, nil
	}

	query, err := f.build(unique(valid), locale)
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", f.entity, err)
	}
	g, err := f.Construct(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(valid))
	for _, id := range valid {
		r, ok := g.Resource(id)
		if !ok || !projection.HasType(r, f.class) {
			continue
		}
		out = append(out, f.project(r))
	}
	return out, nil
}

// GetByID returns the record of id, or nil when id is not an absolute IRI or
// the store does not know it.
func (f *Fetcher[T]) GetByID(ctx context.Context, locale domain.Locale, id string) (*T, error) {
	if !domain.IsAbsoluteIRI(id) {
		return nil, nil
	}
	items, err := f.GetByIDs(ctx, locale, []string{id})
	if err != nil {
		return nil, err
	}
	if len(items) != 1 {
		return nil, nil
	}
	return &items[0], nil
}

// Construct runs query and records its outcome.
func (f *Fetcher[T]) Construct(ctx context.Context, query string) (*rdf.Graph, error) {
	start := time.Now()
	g, err := f.store.Construct(ctx, query)
	metrics.GraphQueryDuration.WithLabelValues(f.entity).Observe(time.Since(start).Seconds())
	metrics.GraphQueriesTotal.WithLabelValues(f.entity, metrics.Status(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Error("graph query failed",
			zap.String("entity", f.entity),
			zap.Error(err),
		)
		return nil, fmt.Errorf("query %s: %w", f.entity, err)
	}
	metrics.GraphTriplesLoaded.WithLabelValues(f.entity).Add(float64(g.Len()))
	logger.FromContext(ctx).Debug("graph query",
		zap.String("entity", f.entity),
		zap.Int("triples", g.Len()),
		zap.Duration("took", time.Since(start)),
	)
	return g, nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
