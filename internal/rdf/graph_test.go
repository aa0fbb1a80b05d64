package rdf

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `<https://example.org/object/1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <https://example.org/HeritageObject> .
<https://example.org/object/1> <https://example.org/name> "Schaal"@nl .
<https://example.org/object/1> <https://example.org/material> _:m1 .
<https://example.org/object/1> <https://example.org/material> _:m2 .
<https://example.org/object/1> <https://example.org/material> _:m1 .
_:m1 <https://example.org/name> "Porselein" .
_:m2 <https://example.org/name> "Goud" .
<https://example.org/object/1> <https://example.org/dateCreated> "1889-05"^^<http://www.w3.org/2001/XMLSchema#gYearMonth> .
`

func loadSample(t *testing.T) *Graph {
	t.Helper()
	g, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return g
}

func TestDecode_IndexesSubjects(t *testing.T) {
	g := loadSample(t)

	if g.Len() != 7 {
		t.Errorf("len = %d, want 7 (duplicate triple dropped)", g.Len())
	}
	r, ok := g.Resource("https://example.org/object/1")
	if !ok {
		t.Fatal("expected object resource")
	}

	name := r.Property("https://example.org/name")
	if diff := cmp.Diff([]Term{LangLiteral("Schaal", "nl")}, name); diff != "" {
		t.Errorf("name mismatch (-want +got):\n%s", diff)
	}

	materials := r.Property("https://example.org/material")
	if diff := cmp.Diff([]Term{Blank("m1"), Blank("m2")}, materials); diff != "" {
		t.Errorf("materials mismatch (-want +got):\n%s", diff)
	}

	date := r.Property("https://example.org/dateCreated")
	if len(date) != 1 || date[0].Value != "1889-05" || date[0].Datatype == "" {
		t.Errorf("date = %+v, want typed literal 1889-05", date)
	}
}

func TestResource_FollowBlankNode(t *testing.T) {
	g := loadSample(t)
	r, _ := g.Resource("https://example.org/object/1")

	m, ok := r.Follow(r.Property("https://example.org/material")[1])
	if !ok {
		t.Fatal("expected blank node to resolve")
	}
	if m.ID() != "_:m2" {
		t.Errorf("id = %q, want _:m2", m.ID())
	}
	if got := m.Property("https://example.org/name"); len(got) != 1 || got[0].Value != "Goud" {
		t.Errorf("name = %+v, want Goud", got)
	}

	if _, ok := r.Follow(Literal("x")); ok {
		t.Error("literals must not resolve")
	}
}

func TestGraph_UnsetPredicateIsNil(t *testing.T) {
	g := loadSample(t)
	r, _ := g.Resource("https://example.org/object/1")
	if got := r.Property("https://example.org/unknown"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestGraph_ObjectOnlyNodeIsAbsent(t *testing.T) {
	g := NewGraph()
	g.Add(IRI("https://example.org/a"), "https://example.org/p", IRI("https://example.org/b"))
	if _, ok := g.Resource("https://example.org/b"); ok {
		t.Error("node without own triples should be absent")
	}
}

func TestGraph_SubjectsOfType(t *testing.T) {
	g := NewGraph()
	typ := "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	g.Add(IRI("https://example.org/e2"), typ, IRI("https://example.org/Event"))
	g.Add(IRI("https://example.org/x"), typ, IRI("https://example.org/Other"))
	g.Add(IRI("https://example.org/e1"), typ, IRI("https://example.org/Event"))

	got := g.SubjectsOfType(typ, "https://example.org/Event")
	if diff := cmp.Diff([]string{"https://example.org/e2", "https://example.org/e1"}, got); diff != "" {
		t.Errorf("subjects mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("<https://example.org/a> nonsense\n")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGraph_EachVisitsEveryTriple(t *testing.T) {
	g := loadSample(t)

	var n int
	blanks := map[string]bool{}
	g.Each(func(s Term, p string, o Term) {
		n++
		if s.Kind == KindBlank {
			blanks[s.Key()] = true
		}
	})
	if n != g.Len() {
		t.Errorf("visited %d triples, want %d", n, g.Len())
	}
	if !blanks["_:m1"] || !blanks["_:m2"] {
		t.Errorf("blank subjects = %v, want _:m1 and _:m2", blanks)
	}
}
