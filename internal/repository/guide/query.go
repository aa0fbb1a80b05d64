package guide

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/projection"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

var kind = graph.Kind{Source: vocab.SchemaCreativeWork, Target: vocab.ResearchGuide}

var (
	hasPart  = sparql.IRI(vocab.SchemaHasPart)
	seeAlso  = sparql.IRI(vocab.RDFSSeeAlso)
	parentOf = sparql.Alt(sparql.IRI(vocab.SchemaIsPartOf), sparql.Inverse(hasPart))
)

// expandPath reaches every guide projected below a root.
var expandPath = func() sparql.Path {
	steps := make([]sparql.Path, projection.MaxGuideDepth-1)
	for i := range steps {
		steps[i] = sparql.ZeroOrOne(sparql.Alt(hasPart, seeAlso))
	}
	return sparql.Seq(steps...)
}()

// BuildQuery builds the CONSTRUCT that loads guides together with the
// guides they contain or refer to.
func BuildQuery(ids []string, locale domain.Locale) (string, error) {
	s := graph.Subject
	return graph.NewQuery(ids, locale, vocab.ResearchGuide, kind).
		Expand(expandPath).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.NamePath, vocab.Name)
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, sparql.IRI(vocab.SchemaAlternateName), vocab.AlternateName)
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, sparql.IRI(vocab.SchemaAbstract), vocab.Abstract)
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, sparql.IRI(vocab.SchemaText), vocab.Text)
		}).
		Branch(func(b *graph.Branch) {
			b.Value(s, sparql.IRI(vocab.SchemaEncodingFormat), vocab.EncodingFormat)
		}).
		Branch(func(b *graph.Branch) {
			kw := b.Link(s, sparql.IRI(vocab.SchemaKeywords), vocab.Keyword)
			b.Filter(sparql.IsIRI(kw))
			b.Thing(kw)
		}).
		Branch(func(b *graph.Branch) {
			b.Place(b.Link(s, sparql.IRI(vocab.SchemaContentLocation), vocab.ContentLocation))
		}).
		Branch(func(b *graph.Branch) {
			c := b.Link(s, sparql.IRI(vocab.SchemaCitation), vocab.Citation)
			b.Label(c, graph.NamePath, vocab.Name)
			b.Label(c, sparql.IRI(vocab.SchemaDescription), vocab.Description)
			b.Value(c, sparql.IRI(vocab.SchemaURL), vocab.URL)
		}).
		Branch(func(b *graph.Branch) {
			b.Link(s, hasPart, vocab.HasPart)
		}).
		Branch(func(b *graph.Branch) {
			b.Link(s, seeAlso, vocab.SeeAlso)
		}).
		Build()
}

// BuildTopLevelQuery builds the discovery query for guides that are not
// part of another guide.
func BuildTopLevelQuery() (string, error) {
	g, parent := sparql.Var("guide"), sparql.Var("parent")
	return sparql.Construct{
		Template: []sparql.Triple{
			sparql.T(g, sparql.IRI(vocab.RDFType), sparql.IRI(vocab.ResearchGuide)),
		},
		Where: []sparql.Pattern{
			sparql.T(g, sparql.IRI(vocab.RDFType), sparql.IRI(kind.Source)),
			sparql.Filter(sparql.NotExists(sparql.T(g, parentOf, parent))),
		},
	}.Build()
}
