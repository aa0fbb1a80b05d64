// Package provenance loads acquisitions and transfers of custody.
package provenance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

type store interface {
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// Repo implements lookups of provenance events.
type Repo struct {
	*graph.Fetcher[domain.ProvenanceEvent]
}

// New creates a provenance repository.
func New(s store) *Repo {
	return &Repo{Fetcher: graph.NewFetcher(s, "provenance-events", vocab.ProvenanceEvent, BuildQuery, projection.ProvenanceEvent)}
}

// GetByObjectID returns the provenance of object in chronological order.
// An invalid or unknown object yields an empty list.
func (r *Repo) GetByObjectID(ctx context.Context, locale domain.Locale, object string) ([]domain.ProvenanceEvent, error) {
	if !domain.IsAbsoluteIRI(object) {
		return []domain.ProvenanceEvent{}, nil
	}
	query, err := BuildByObjectQuery(object)
	if err != nil {
		return nil, fmt.Errorf("build provenance discovery query: %w", err)
	}
	g, err := r.Construct(ctx, query)
	if err != nil {
		return nil, err
	}
	events, err := r.GetByIDs(ctx, locale, g.SubjectsOfType(vocab.RDFType, vocab.ProvenanceEvent))
	if err != nil {
		return nil, err
	}
	return Order(events), nil
}

// Order sorts events chronologically. Events are first sorted by the start
// of their date, undated last, then by id. Events that declare a
// predecessor within the list are then moved directly after it.
func Order(events []domain.ProvenanceEvent) []domain.ProvenanceEvent {
	sorted := make([]domain.ProvenanceEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := start(sorted[i]), start(sorted[j])
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return sorted[i].ID < sorted[j].ID
	})

	index := make(map[string]int, len(sorted))
	for i, e := range sorted {
		index[e.ID] = i
	}
	next := make(map[int][]int, len(sorted))
	hasPrev := make([]bool, len(sorted))
	link := func(prev, succ int) {
		if prev == succ || hasPrev[succ] {
			return
		}
		hasPrev[succ] = true
		next[prev] = append(next[prev], succ)
	}
	for i, e := range sorted {
		if e.StartsAfter != nil {
			if p, ok := index[*e.StartsAfter]; ok {
				link(p, i)
			}
		}
		if e.EndsBefore != nil {
			if n, ok := index[*e.EndsBefore]; ok {
				link(i, n)
			}
		}
	}
	for _, succ := range next {
		sort.Ints(succ)
	}

	out := make([]domain.ProvenanceEvent, 0, len(sorted))
	visited := make([]bool, len(sorted))
	var visit func(i int)
	visit = func(i int) {
		if visited[i] {
			return
		}
		visited[i] = true
		out = append(out, sorted[i])
		for _, n := range next[i] {
			visit(n)
		}
	}
	for i := range sorted {
		if !hasPrev[i] {
			visit(i)
		}
	}
	// Predecessor cycles have no root.
	for i := range sorted {
		visit(i)
	}
	return out
}

func start(e domain.ProvenanceEvent) *time.Time {
	if e.Date == nil {
		return nil
	}
	return e.Date.StartDate
}
