package projection

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// HeritageObject projects a human-made object.
func HeritageObject(r rdf.Resource) domain.HeritageObject {
	return domain.HeritageObject{
		ID:              r.ID(),
		Identifier:      Value(r, vocab.Identifier),
		Name:            Value(r, vocab.Name),
		Description:     Value(r, vocab.Description),
		Inscriptions:    Values(r, vocab.Inscription),
		Types:           Terms(r, vocab.AdditionalType),
		Subjects:        Terms(r, vocab.Subject),
		Materials:       Terms(r, vocab.Material),
		Techniques:      Terms(r, vocab.Technique),
		Creators:        mapObjects(r, vocab.Creator, Agent),
		DateCreated:     optional(r, vocab.DateCreated, TimeSpan),
		LocationCreated: optional(r, vocab.LocationCreated, Place),
		Images:          mapObjects(r, vocab.Image, Image),
		Owner:           optional(r, vocab.Owner, Agent),
		IsPartOf:        optional(r, vocab.IsPartOf, Dataset),
	}
}
