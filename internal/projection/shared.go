package projection

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// MaxPlaceDepth bounds the place parent chain. Source data is expected to be
// acyclic but this is not verified.
const MaxPlaceDepth = 8

// Thing projects the base shape.
func Thing(r rdf.Resource) domain.Thing {
	return domain.Thing{
		ID:          r.ID(),
		Name:        Value(r, vocab.Name),
		Description: Value(r, vocab.Description),
		SameAs:      Value(r, vocab.SameAs),
	}
}

// Terms projects every resource of predicate as a Term.
func Terms(r rdf.Resource, predicate string) []domain.Term {
	return mapObjects(r, predicate, Thing)
}

// Agent projects a person or organization.
func Agent(r rdf.Resource) domain.Agent {
	return domain.Agent{Thing: Thing(r), Type: AgentType(r)}
}

// Place projects r and its parents up to MaxPlaceDepth levels, r being level one.
func Place(r rdf.Resource) domain.Place {
	return place(r, 1)
}

func place(r rdf.Resource, depth int) domain.Place {
	p := domain.Place{Thing: Thing(r)}
	if depth >= MaxPlaceDepth {
		return p
	}
	if parent := Object(r, vocab.IsPartOf); parent != nil {
		pp := place(parent, depth+1)
		p.IsPartOf = &pp
	}
	return p
}

// TimeSpan projects the closure of the start and end expressions. A span
// without any valid bound is still returned.
func TimeSpan(r rdf.Resource) domain.TimeSpan {
	return domain.TimeSpan{
		ID:        r.ID(),
		StartDate: StartOf(r, vocab.StartDate),
		EndDate:   EndOf(r, vocab.EndDate),
	}
}

// Image projects a digital representation.
func Image(r rdf.Resource) domain.Image {
	return domain.Image{
		ID:         r.ID(),
		ContentURL: Value(r, vocab.ContentURL),
		License:    optional(r, vocab.License, Thing),
	}
}

// Dataset projects a dataset.
func Dataset(r rdf.Resource) domain.Dataset {
	return domain.Dataset{
		Thing:         Thing(r),
		Publisher:     optional(r, vocab.Publisher, Agent),
		License:       optional(r, vocab.License, Thing),
		Keywords:      Values(r, vocab.Keyword),
		DateCreated:   StartOf(r, vocab.DateCreated),
		DateModified:  StartOf(r, vocab.DateModified),
		DatePublished: StartOf(r, vocab.DatePublished),
	}
}

func optional[T any](r rdf.Resource, predicate string, project func(rdf.Resource) T) *T {
	o := Object(r, predicate)
	if o == nil {
		return nil
	}
	v := project(o)
	return &v
}

func mapObjects[T any](r rdf.Resource, predicate string, project func(rdf.Resource) T) []T {
	objs := Objects(r, predicate)
	if len(objs) == 0 {
		return nil
	}
	out := make([]T, len(objs))
	for i, o := range objs {
		out[i] = project(o)
	}
	return out
}
