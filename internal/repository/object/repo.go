// Package object loads heritage objects from the triple store.
package object

import (
	"context"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// store is the consumer interface for the triple store (ISP).
type store interface {
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// Repo implements lookups of heritage objects.
type Repo struct {
	*graph.Fetcher[domain.HeritageObject]
}

// New creates an object repository.
func New(s store) *Repo {
	return &Repo{Fetcher: graph.NewFetcher(s, "objects", vocab.HeritageObject, BuildQuery, projection.HeritageObject)}
}
