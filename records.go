package heritagegraph

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
	searchuc "github.com/kailas-cloud/heritagegraph/internal/usecase/search"
)

type recordRepo[T any] interface {
	GetByID(ctx context.Context, locale domain.Locale, id string) (*T, error)
	GetByIDs(ctx context.Context, locale domain.Locale, ids []string) ([]T, error)
}

// RecordService loads records of one entity family. An empty locale
// selects the client's default.
type RecordService[T any] struct {
	repo   recordRepo[T]
	locale domain.Locale
}

// Get returns the record of id, or nil when the graph does not hold it.
func (s *RecordService[T]) Get(ctx context.Context, locale Locale, id string) (*T, error) {
	rec, err := s.repo.GetByID(ctx, s.resolve(locale), id)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	return rec, nil
}

// GetMany returns the records of ids in the order of ids, skipping those
// the graph does not hold.
func (s *RecordService[T]) GetMany(ctx context.Context, locale Locale, ids []string) ([]T, error) {
	recs, err := s.repo.GetByIDs(ctx, s.resolve(locale), ids)
	if err != nil {
		return nil, fmt.Errorf("get many: %w", err)
	}
	return recs, nil
}

func (s *RecordService[T]) resolve(locale Locale) domain.Locale {
	if locale == "" {
		return s.locale
	}
	return locale
}

type provenanceRepo interface {
	GetByObjectID(ctx context.Context, locale domain.Locale, object string) ([]domain.ProvenanceEvent, error)
}

// ProvenanceService loads provenance events.
type ProvenanceService struct {
	RecordService[ProvenanceEvent]
	repo provenanceRepo
}

// ForObject returns the events that transferred the object, in
// chronological order.
func (s *ProvenanceService) ForObject(ctx context.Context, locale Locale, objectID string) ([]ProvenanceEvent, error) {
	events, err := s.repo.GetByObjectID(ctx, s.resolve(locale), objectID)
	if err != nil {
		return nil, fmt.Errorf("provenance for object: %w", err)
	}
	return events, nil
}

type guideRepo interface {
	GetTopLevels(ctx context.Context, locale domain.Locale) ([]domain.ResearchGuide, error)
}

// GuideService loads research guides.
type GuideService struct {
	RecordService[ResearchGuide]
	repo guideRepo
}

// TopLevel returns the guides that are not part of another guide, sorted
// by name.
func (s *GuideService) TopLevel(ctx context.Context, locale Locale) ([]ResearchGuide, error) {
	guides, err := s.repo.GetTopLevels(ctx, s.resolve(locale))
	if err != nil {
		return nil, fmt.Errorf("top-level guides: %w", err)
	}
	return guides, nil
}

type searcher[T any] interface {
	Profile() profile.Profile
	Search(ctx context.Context, o request.Options) (domain.SearchResult[T], error)
}

// SearchService runs faceted searches for one entity family.
type SearchService[T any] struct {
	svc    searcher[T]
	locale domain.Locale
}

func newSearchService[T any](svc *searchuc.Service[T], locale domain.Locale) *SearchService[T] {
	s := &SearchService[T]{locale: locale}
	// A nil *Service must stay a nil interface.
	if svc != nil {
		s.svc = svc
	}
	return s
}

// Enabled reports whether a search index is configured.
func (s *SearchService[T]) Enabled() bool { return s.svc != nil }

// Categories returns the facet category names accepted in
// SearchOptions.Filters.
func (s *SearchService[T]) Categories() []string {
	if s.svc == nil {
		return nil
	}
	p := s.svc.Profile()
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Search returns one page of matching records with facet counts.
func (s *SearchService[T]) Search(ctx context.Context, opts SearchOptions) (SearchResult[T], error) {
	if s.svc == nil {
		return SearchResult[T]{}, ErrSearchDisabled
	}
	if opts.Locale == "" {
		opts.Locale = s.locale
	}
	res, err := s.svc.Search(ctx, opts)
	if err != nil {
		return SearchResult[T]{}, fmt.Errorf("search: %w", err)
	}
	return res, nil
}
