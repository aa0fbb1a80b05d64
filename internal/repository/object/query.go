package object

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

var (
	hasType         = sparql.IRI(vocab.CRMHasType)
	production      = sparql.IRI(vocab.CRMWasProducedBy)
	symbolic        = sparql.IRI(vocab.CRMHasContent)
	identPath       = sparql.Seq(sparql.IRI(vocab.CRMIsIdentifiedBy), symbolic)
	inscriptionPath = sparql.Seq(sparql.IRI(vocab.CRMCarries), symbolic)
	dataset         = sparql.IRI(vocab.SchemaIsPartOf)
	subjectPath     = sparql.Seq(sparql.IRI(vocab.CRMShows), sparql.IRI(vocab.CRMIsAbout))
	creatorPath     = sparql.Seq(production, sparql.IRI(vocab.CRMCarriedOutBy))
	techniqPath     = sparql.Seq(production, sparql.IRI(vocab.CRMUsedGeneralTechnique))
	timeSpanPath    = sparql.Seq(production, sparql.IRI(vocab.CRMHasTimeSpan))
	placePath       = sparql.Seq(production, sparql.IRI(vocab.CRMTookPlaceAt))
)

// BuildQuery builds the CONSTRUCT that loads heritage objects.
func BuildQuery(ids []string, locale domain.Locale) (string, error) {
	return newQuery(ids, locale).Build()
}

func newQuery(ids []string, locale domain.Locale) *graph.Query {
	s := graph.Subject
	return graph.NewQuery(ids, locale, vocab.HeritageObject,
		graph.Kind{Source: vocab.CRMHumanMadeObject, Target: vocab.HeritageObject}).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.NamePath, vocab.Name)
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.DescriptionPath, vocab.Description)
		}).
		Branch(func(b *graph.Branch) {
			b.Value(s, identPath, vocab.Identifier)
		}).
		Branch(func(b *graph.Branch) {
			b.Value(s, inscriptionPath, vocab.Inscription)
		}).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, hasType, vocab.AdditionalType))
		}).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, subjectPath, vocab.Subject))
		}).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, sparql.IRI(vocab.CRMConsistsOf), vocab.Material))
		}).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, techniqPath, vocab.Technique))
		}).
		Branch(func(b *graph.Branch) {
			b.Agent(b.Link(s, creatorPath, vocab.Creator))
		}).
		Branch(func(b *graph.Branch) {
			b.TimeSpan(b.Link(s, timeSpanPath, vocab.DateCreated))
		}).
		Branch(func(b *graph.Branch) {
			b.Place(b.Link(s, placePath, vocab.LocationCreated))
		}).
		Branch(func(b *graph.Branch) {
			img := b.Link(s, sparql.IRI(vocab.CRMHasRepresentation), vocab.Image)
			b.Value(img, sparql.IRI(vocab.SchemaContentURL), vocab.ContentURL)
			b.Optional(func(b *graph.Branch) {
				b.Thing(b.Link(img, sparql.IRI(vocab.SchemaLicense), vocab.License))
			})
		}).
		Branch(func(b *graph.Branch) {
			b.Agent(b.Link(s, sparql.IRI(vocab.CRMHasCurrentOwner), vocab.Owner))
		}).
		Branch(func(b *graph.Branch) {
			b.Dataset(b.Link(s, dataset, vocab.IsPartOf))
		})
}
