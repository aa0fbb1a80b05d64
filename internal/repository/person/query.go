package person

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

var (
	birth = sparql.IRI(vocab.CRMWasBorn)
	death = sparql.IRI(vocab.CRMDied)
	at    = sparql.IRI(vocab.CRMTookPlaceAt)
	when  = sparql.IRI(vocab.CRMHasTimeSpan)
)

// BuildQuery builds the CONSTRUCT that loads persons.
func BuildQuery(ids []string, locale domain.Locale) (string, error) {
	s := graph.Subject
	return graph.NewQuery(ids, locale, vocab.Person,
		graph.Kind{Source: vocab.CRMPerson, Target: vocab.Person}).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.NamePath, vocab.Name)
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.DescriptionPath, vocab.Description)
		}).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, sparql.IRI(vocab.CRMMemberOf), vocab.Nationality))
		}).
		Branch(func(b *graph.Branch) {
			b.Place(b.Link(s, sparql.Seq(birth, at), vocab.BirthPlace))
		}).
		Branch(func(b *graph.Branch) {
			b.TimeSpan(b.Link(s, sparql.Seq(birth, when), vocab.DateOfBirth))
		}).
		Branch(func(b *graph.Branch) {
			b.Place(b.Link(s, sparql.Seq(death, at), vocab.DeathPlace))
		}).
		Branch(func(b *graph.Branch) {
			b.TimeSpan(b.Link(s, sparql.Seq(death, when), vocab.DateOfDeath))
		}).
		Branch(func(b *graph.Branch) {
			b.Dataset(b.Link(s, sparql.IRI(vocab.SchemaIsPartOf), vocab.IsPartOf))
		}).
		Build()
}
