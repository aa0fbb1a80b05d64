package dataset

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// BuildQuery builds the CONSTRUCT that loads datasets.
func BuildQuery(ids []string, locale domain.Locale) (string, error) {
	return graph.NewQuery(ids, locale, vocab.Dataset,
		graph.Kind{Source: vocab.SchemaDataset, Target: vocab.Dataset}).
		Branch(func(b *graph.Branch) {
			b.Dataset(graph.Subject)
		}).
		Build()
}
