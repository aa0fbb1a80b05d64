package rdf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// Graph is a set of triples indexed by subject. It is built per fetch and
// never shared between calls, so blank node labels are stable only within it.
type Graph struct {
	subjects map[string]*node
	order    []string
	size     int
}

type node struct {
	id         string
	subject    Term
	predicates []string
	objects    map[string][]Term
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{subjects: make(map[string]*node)}
}

// Decode reads an N-Triples or N-Quads stream into a new graph.
// Graph labels are ignored.
func Decode(r io.Reader) (*Graph, error) {
	g := NewGraph()
	dec := nquads.NewReader(r, true)
	for {
		q, err := dec.ReadQuad()
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode triples: %w", err)
		}
		if err := g.AddQuad(q); err != nil {
			return nil, err
		}
	}
}

// AddQuad adds the subject/predicate/object part of q.
func (g *Graph) AddQuad(q quad.Quad) error {
	s, err := fromValue(q.Subject)
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	p, err := fromValue(q.Predicate)
	if err != nil {
		return fmt.Errorf("predicate: %w", err)
	}
	o, err := fromValue(q.Object)
	if err != nil {
		return fmt.Errorf("object: %w", err)
	}
	if !s.IsResource() || p.Kind != KindIRI {
		return fmt.Errorf("malformed triple %s", q.String())
	}
	g.Add(s, p.Value, o)
	return nil
}

// Add records one triple. Duplicate triples are kept once.
func (g *Graph) Add(subject Term, predicate string, object Term) {
	key := subject.Key()
	n, ok := g.subjects[key]
	if !ok {
		n = &node{id: key, subject: subject, objects: make(map[string][]Term)}
		g.subjects[key] = n
		g.order = append(g.order, key)
	}
	existing, seen := n.objects[predicate]
	for _, t := range existing {
		if t == object {
			return
		}
	}
	if !seen {
		n.predicates = append(n.predicates, predicate)
	}
	n.objects[predicate] = append(existing, object)
	g.size++
}

// Each calls fn for every triple in load order.
func (g *Graph) Each(fn func(subject Term, predicate string, object Term)) {
	for _, id := range g.order {
		n := g.subjects[id]
		for _, p := range n.predicates {
			for _, o := range n.objects[p] {
				fn(n.subject, p, o)
			}
		}
	}
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return g.size }

// Resource looks up a subject by IRI or "_:"-prefixed blank node key.
// A node that only appears in object position is absent.
func (g *Graph) Resource(id string) (Resource, bool) {
	n, ok := g.subjects[id]
	if !ok {
		return nil, false
	}
	return &resource{graph: g, node: n}, true
}

// SubjectsOfType returns, in load order, the subjects typed with class.
func (g *Graph) SubjectsOfType(typePredicate, class string) []string {
	var ids []string
	for _, id := range g.order {
		for _, t := range g.subjects[id].objects[typePredicate] {
			if t.Kind == KindIRI && t.Value == class {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}

func fromValue(v quad.Value) (Term, error) {
	switch val := v.(type) {
	case quad.IRI:
		return IRI(string(val)), nil
	case quad.BNode:
		return Blank(string(val)), nil
	case quad.String:
		return Literal(string(val)), nil
	case quad.LangString:
		return LangLiteral(string(val.Value), val.Lang), nil
	case quad.TypedString:
		return Term{Kind: KindLiteral, Value: string(val.Value), Datatype: string(val.Type)}, nil
	case nil:
		return Term{}, errors.New("missing term")
	case quad.Time:
		return Literal(time.Time(val).UTC().Format(time.RFC3339Nano)), nil
	default:
		// Other native values (numbers, booleans) produced by non-raw readers.
		return Literal(fmt.Sprint(v.Native())), nil
	}
}
