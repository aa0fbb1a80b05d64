// Package person loads persons (constituents) from the triple store.
package person

import (
	"context"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

type store interface {
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// Repo implements lookups of persons.
type Repo struct {
	*graph.Fetcher[domain.Person]
}

// New creates a person repository.
func New(s store) *Repo {
	return &Repo{Fetcher: graph.NewFetcher(s, "persons", vocab.Person, BuildQuery, projection.Person)}
}
