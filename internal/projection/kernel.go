// Package projection turns resources of a loaded graph into domain records.
//
// Projectors only read the internal vocabulary emitted by the CONSTRUCT
// queries of the repositories; locale selection has already happened, so
// each language-sensitive field carries at most one literal.
package projection

import (
	"time"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/edtf"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

// Value returns the first IRI or literal of predicate, or nil when unset.
func Value(r rdf.Resource, predicate string) *string {
	for _, t := range r.Property(predicate) {
		if t.Kind == rdf.KindBlank {
			continue
		}
		v := t.Value
		return &v
	}
	return nil
}

// Values returns every IRI or literal of predicate in load order.
// The result is nil, never empty, when there are none.
func Values(r rdf.Resource, predicate string) []string {
	var out []string
	for _, t := range r.Property(predicate) {
		if t.Kind == rdf.KindBlank {
			continue
		}
		out = append(out, t.Value)
	}
	return out
}

// Object returns the first resource referenced by predicate. Graphs sometimes
// carry duplicates for relations that are single-valued by nature; the rest
// are ignored.
func Object(r rdf.Resource, predicate string) rdf.Resource {
	for _, t := range r.Property(predicate) {
		if t.IsResource() {
			return follow(r, t)
		}
	}
	return nil
}

// Objects returns every resource referenced by predicate, or nil.
func Objects(r rdf.Resource, predicate string) []rdf.Resource {
	var out []rdf.Resource
	for _, t := range r.Property(predicate) {
		if t.IsResource() {
			out = append(out, follow(r, t))
		}
	}
	return out
}

// follow resolves t, falling back to a resource that only knows its own id
// when the graph holds no triples about it.
func follow(r rdf.Resource, t rdf.Term) rdf.Resource {
	if res, ok := r.Follow(t); ok {
		return res
	}
	return bare(t.Key())
}

type bare string

func (b bare) ID() string                         { return string(b) }
func (bare) Property(string) []rdf.Term           { return nil }
func (bare) Follow(rdf.Term) (rdf.Resource, bool) { return nil, false }

// HasType reports whether r is typed with class.
func HasType(r rdf.Resource, class string) bool {
	for _, t := range r.Property(vocab.RDFType) {
		if t.Kind == rdf.KindIRI && t.Value == class {
			return true
		}
	}
	return false
}

// AgentType classifies r. Unrecognized or missing types yield AgentUnknown.
func AgentType(r rdf.Resource) domain.AgentType {
	switch {
	case HasType(r, vocab.Person):
		return domain.AgentPerson
	case HasType(r, vocab.Organization):
		return domain.AgentOrganization
	default:
		return domain.AgentUnknown
	}
}

// StartOf returns the earliest instant of the first date expression of
// predicate. Malformed expressions yield nil.
func StartOf(r rdf.Resource, predicate string) *time.Time {
	v := Value(r, predicate)
	if v == nil {
		return nil
	}
	t, ok := edtf.ClosureStart(*v)
	if !ok {
		return nil
	}
	return &t
}

// EndOf returns the latest instant of the first date expression of predicate.
func EndOf(r rdf.Resource, predicate string) *time.Time {
	v := Value(r, predicate)
	if v == nil {
		return nil
	}
	t, ok := edtf.ClosureEnd(*v)
	if !ok {
		return nil
	}
	return &t
}
