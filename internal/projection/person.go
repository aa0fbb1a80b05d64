package projection

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// Person projects a constituent.
func Person(r rdf.Resource) domain.Person {
	return domain.Person{
		ID:            r.ID(),
		Name:          Value(r, vocab.Name),
		Description:   Value(r, vocab.Description),
		Nationalities: Terms(r, vocab.Nationality),
		BirthPlace:    optional(r, vocab.BirthPlace, Place),
		DateOfBirth:   optional(r, vocab.DateOfBirth, TimeSpan),
		DeathPlace:    optional(r, vocab.DeathPlace, Place),
		DateOfDeath:   optional(r, vocab.DateOfDeath, TimeSpan),
		IsPartOf:      optional(r, vocab.IsPartOf, Dataset),
	}
}
