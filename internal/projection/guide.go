package projection

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// MaxGuideDepth is the deepest guide level that is projected. The guide
// passed to ResearchGuide is level one; guides at MaxGuideDepth are returned
// without their parts and cross-references.
const MaxGuideDepth = 4

// ResearchGuide projects a guide with its parts and cross-references.
// Guides referring back to each other are cut off at MaxGuideDepth.
func ResearchGuide(r rdf.Resource) domain.ResearchGuide {
	return guide(r, 1)
}

func guide(r rdf.Resource, depth int) domain.ResearchGuide {
	g := domain.ResearchGuide{
		ID:               r.ID(),
		Name:             Value(r, vocab.Name),
		AlternateName:    Value(r, vocab.AlternateName),
		Abstract:         Value(r, vocab.Abstract),
		Text:             Value(r, vocab.Text),
		EncodingFormat:   Value(r, vocab.EncodingFormat),
		Keywords:         Terms(r, vocab.Keyword),
		ContentLocations: mapObjects(r, vocab.ContentLocation, Place),
		Citations:        mapObjects(r, vocab.Citation, Citation),
	}
	if depth >= MaxGuideDepth {
		return g
	}
	next := func(o rdf.Resource) domain.ResearchGuide { return guide(o, depth+1) }
	g.HasParts = mapObjects(r, vocab.HasPart, next)
	g.SeeAlso = mapObjects(r, vocab.SeeAlso, next)
	return g
}

// Citation projects a bibliographic reference.
func Citation(r rdf.Resource) domain.Citation {
	return domain.Citation{
		ID:          r.ID(),
		Name:        Value(r, vocab.Name),
		Description: Value(r, vocab.Description),
		URL:         Value(r, vocab.URL),
	}
}
