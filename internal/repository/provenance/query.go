package provenance

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/repository/graph"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

var kinds = []graph.Kind{
	{Source: vocab.CRMAcquisition, Target: vocab.Acquisition},
	{Source: vocab.CRMTransferOfCustody, Target: vocab.TransferOfCustody},
}

var (
	fromPath     = sparql.Alt(sparql.IRI(vocab.CRMTransferredTitleFrom), sparql.IRI(vocab.CRMCustodyFrom))
	toPath       = sparql.Alt(sparql.IRI(vocab.CRMTransferredTitleTo), sparql.IRI(vocab.CRMCustodyTo))
	transferPath = sparql.Alt(sparql.IRI(vocab.CRMTransferredTitleOf), sparql.IRI(vocab.CRMTransferredCustodyOf))
)

// BuildQuery builds the CONSTRUCT that loads provenance events.
func BuildQuery(ids []string, locale domain.Locale) (string, error) {
	s := graph.Subject
	return graph.NewQuery(ids, locale, vocab.ProvenanceEvent, kinds...).
		Branch(func(b *graph.Branch) {
			b.Thing(b.Link(s, sparql.IRI(vocab.CRMHasType), vocab.AdditionalType))
		}).
		Branch(func(b *graph.Branch) {
			b.Label(s, graph.DescriptionPath, vocab.Description)
		}).
		Branch(func(b *graph.Branch) {
			b.TimeSpan(b.Link(s, sparql.IRI(vocab.CRMHasTimeSpan), vocab.Date))
		}).
		Branch(func(b *graph.Branch) {
			b.Agent(b.Link(s, fromPath, vocab.TransferredFrom))
		}).
		Branch(func(b *graph.Branch) {
			b.Agent(b.Link(s, toPath, vocab.TransferredTo))
		}).
		Branch(func(b *graph.Branch) {
			b.Place(b.Link(s, sparql.IRI(vocab.CRMTookPlaceAt), vocab.Location))
		}).
		Branch(func(b *graph.Branch) {
			b.Value(s, sparql.IRI(vocab.CRMStartsAfterEndOf), vocab.StartsAfter)
		}).
		Branch(func(b *graph.Branch) {
			b.Value(s, sparql.IRI(vocab.CRMEndsBeforeStartOf), vocab.EndsBefore)
		}).
		Build()
}

// BuildByObjectQuery builds the discovery query for the events that
// transfer the title or custody of object. Matching events are written as
// provenance events.
func BuildByObjectQuery(object string) (string, error) {
	event, class := sparql.Var("event"), sparql.Var("class")
	rows := make([]sparql.Term, len(kinds))
	for i, k := range kinds {
		rows[i] = sparql.IRI(k.Source)
	}
	return sparql.Construct{
		Template: []sparql.Triple{
			sparql.T(event, sparql.IRI(vocab.RDFType), sparql.IRI(vocab.ProvenanceEvent)),
		},
		Where: []sparql.Pattern{
			sparql.T(event, transferPath, sparql.IRI(object)),
			sparql.T(event, sparql.IRI(vocab.RDFType), class),
			sparql.Values(class, rows...),
		},
	}.Build()
}
