// Package dataset loads datasets from the triple store.
package dataset

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

// Repo implements lookups of datasets.
type Repo struct {
	*graph.Fetcher[domain.Dataset]
}

// New creates a dataset repository.
func New(s store) *Repo {
	return &Repo{Fetcher: graph.NewFetcher(s, "datasets", vocab.Dataset, BuildQuery, projection.Dataset)}
}
