// Package guide loads research guides.
package guide

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

type store interface {
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// Repo implements lookups of research guides.
type Repo struct {
	*graph.Fetcher[domain.ResearchGuide]
}

// New creates a research guide repository.
func New(s store) *Repo {
	return &Repo{Fetcher: graph.NewFetcher(s, "research-guides", vocab.ResearchGuide, BuildQuery, projection.ResearchGuide)}
}

// GetTopLevels returns the guides without a parent, sorted by name.
// Unnamed guides come last.
func (r *Repo) GetTopLevels(ctx context.Context, locale domain.Locale) ([]domain.ResearchGuide, error) {
	query, err := BuildTopLevelQuery()
	if err != nil {
		return nil, fmt.Errorf("build top-level guide query: %w", err)
	}
	g, err := r.Construct(ctx, query)
	if err != nil {
		return nil, err
	}
	guides, err := r.GetByIDs(ctx, locale, g.SubjectsOfType(vocab.RDFType, vocab.ResearchGuide))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(guides, func(i, j int) bool {
		a, b := guides[i].Name, guides[j].Name
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return guides[i].ID < guides[j].ID
	})
	return guides, nil
}
