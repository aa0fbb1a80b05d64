package graph

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

func TestQueryBuild(t *testing.T) {
	q := NewQuery([]string{"https://example.org/o/1", "https://example.org/o/2"}, domain.LocaleDutch,
		vocab.HeritageObject, Kind{Source: vocab.CRMHumanMadeObject, Target: vocab.HeritageObject}).
		Branch(func(b *Branch) { b.Label(Subject, NamePath, vocab.Name) }).
		Branch(func(b *Branch) { b.Agent(b.Link(Subject, sparql.IRI(vocab.CRMHasCurrentOwner), vocab.Owner)) })

	got, err := q.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, want := range []string{
		"VALUES (?s) {",
		"(<https://example.org/o/1>)",
		"?s <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> ?class .",
		"(<http://www.cidoc-crm.org/cidoc-crm/E22_Human-Made_Object> <https://example.org/HeritageObject>)",
		`FILTER(langMatches(LANG(?l1), "nl"))`,
		`FILTER((LANG(?l1) = ""))`,
		"UNION",
		"?s <https://example.org/owner> ?o2 .",
		"(<http://www.cidoc-crm.org/cidoc-crm/E21_Person> <https://example.org/Person>)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("query missing %q:\n%s", want, got)
		}
	}
}

func TestQueryBuild_Expand(t *testing.T) {
	q := NewQuery([]string{"https://example.org/g/1"}, "", vocab.ResearchGuide,
		Kind{Source: vocab.SchemaCreativeWork, Target: vocab.ResearchGuide}).
		Expand(sparql.ZeroOrMore(sparql.IRI(vocab.SchemaHasPart)))

	got, err := q.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(got, "VALUES (?root) {") || !strings.Contains(got, "?root (<https://schema.org/hasPart>)* ?s .") {
		t.Errorf("expand not rendered:\n%s", got)
	}
	if strings.Contains(got, "UNION") {
		t.Errorf("unexpected union without branches:\n%s", got)
	}
}

func TestQueryBuild_RejectsInjection(t *testing.T) {
	q := NewQuery([]string{"https://example.org/o/1> } ; DROP ALL ; {"}, domain.LocaleEnglish,
		vocab.HeritageObject, Kind{Source: vocab.CRMHumanMadeObject, Target: vocab.HeritageObject})
	if _, err := q.Build(); err == nil {
		t.Fatal("expected error for malformed IRI")
	}
}

func TestQueryBuild_Errors(t *testing.T) {
	if _, err := NewQuery(nil, domain.LocaleEnglish, vocab.HeritageObject,
		Kind{Source: vocab.CRMHumanMadeObject, Target: vocab.HeritageObject}).Build(); err == nil {
		t.Error("expected error without ids")
	}
	if _, err := NewQuery([]string{"https://example.org/o/1"}, domain.LocaleEnglish, vocab.HeritageObject).Build(); err == nil {
		t.Error("expected error without classes")
	}
}

func TestQuery_OptionalFieldsAreScopedToSubject(t *testing.T) {
	const ex = "https://example.org/"
	g := rdf.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		g.Add(rdf.IRI(ex+id), vocab.RDFType, rdf.IRI(vocab.SchemaCreativeWork))
	}
	g.Add(rdf.IRI(ex+"a"), vocab.SchemaName, rdf.LangLiteral("Gids", "nl"))
	g.Add(rdf.IRI(ex+"b"), vocab.SchemaName, rdf.Literal("Guide"))
	g.Add(rdf.IRI(ex+"a"), vocab.OWLSameAs, rdf.IRI("https://example.com/a"))

	c, err := NewQuery([]string{ex + "b", ex + "c"}, domain.LocaleDutch, vocab.ResearchGuide,
		Kind{Source: vocab.SchemaCreativeWork, Target: vocab.ResearchGuide}).
		Branch(func(b *Branch) { b.Label(Subject, NamePath, vocab.Name) }).
		Branch(func(b *Branch) { b.Value(Subject, sparql.IRI(vocab.OWLSameAs), vocab.SameAs) }).
		Construct()
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	out, err := c.Eval(g)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	b, ok := out.Resource(ex + "b")
	if !ok {
		t.Fatal("expected b")
	}
	if got := b.Property(vocab.Name); len(got) != 1 || got[0].Value != "Guide" {
		t.Errorf("name of b = %v, want untagged Guide", got)
	}
	if got := b.Property(vocab.SameAs); got != nil {
		t.Errorf("sameAs of b = %v, want none", got)
	}

	c2, ok := out.Resource(ex + "c")
	if !ok {
		t.Fatal("resource without fields should be loaded")
	}
	if got := c2.Property(vocab.RDFType); len(got) != 1 || got[0].Value != vocab.ResearchGuide {
		t.Errorf("types of c = %v, want %s", got, vocab.ResearchGuide)
	}
	if _, ok := out.Resource(ex + "a"); ok {
		t.Error("a was not requested")
	}
}
