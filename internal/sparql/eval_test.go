package sparql

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/heritagegraph/internal/rdf"
)

func fixture() *rdf.Graph {
	g := rdf.NewGraph()
	a, b, c := rdf.IRI(ex+"a"), rdf.IRI(ex+"b"), rdf.IRI(ex+"c")
	for _, s := range []rdf.Term{a, b, c} {
		g.Add(s, ex+"type", rdf.IRI(ex+"Thing"))
	}
	g.Add(a, ex+"name", rdf.LangLiteral("Schaal", "nl-NL"))
	g.Add(a, ex+"name", rdf.Literal("Bowl"))
	g.Add(b, ex+"name", rdf.Literal("Kan"))
	g.Add(a, ex+"within", b)
	g.Add(b, ex+"within", c)
	return g
}

func names(t *testing.T, out *rdf.Graph, id string) []rdf.Term {
	t.Helper()
	r, ok := out.Resource(id)
	if !ok {
		return nil
	}
	return r.Property(ex + "name")
}

func TestEval_OptionalKeepsUnmatched(t *testing.T) {
	q := Construct{
		Template: []Triple{
			T(Var("s"), IRI(ex+"type"), IRI(ex+"Thing")),
			T(Var("s"), IRI(ex+"name"), Var("n")),
		},
		Where: []Pattern{
			Values(Var("s"), IRI(ex+"b"), IRI(ex+"c")),
			T(Var("s"), IRI(ex+"type"), IRI(ex+"Thing")),
			Optional(T(Var("s"), IRI(ex+"name"), Var("n"))),
		},
	}
	out, err := q.Eval(fixture())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if _, ok := out.Resource(ex + "c"); !ok {
		t.Error("resource without name should survive the optional")
	}
	if got := names(t, out, ex+"b"); len(got) != 1 || got[0].Value != "Kan" {
		t.Errorf("names of b = %v, want Kan", got)
	}
	if _, ok := out.Resource(ex + "a"); ok {
		t.Error("a is not among the requested subjects")
	}
}

func TestEval_LeadingOptionalIsNotScopedToOuterSubject(t *testing.T) {
	// A group that starts with OPTIONAL is LeftJoin over the empty solution,
	// so it sees every name in the graph rather than those of ?s.
	q := Construct{
		Template: []Triple{T(Var("s"), IRI(ex+"name"), Var("n"))},
		Where: []Pattern{
			Values(Var("s"), IRI(ex+"b")),
			Group(Optional(
				T(Var("s"), IRI(ex+"name"), Var("n")),
				Filter(LangMatches(Lang(Var("n")), "nl")),
			)),
		},
	}
	out, err := q.Eval(fixture())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got := names(t, out, ex+"b"); len(got) != 0 {
		t.Errorf("names of b = %v, want none: the optional bound ?s to a", got)
	}
}

func TestEval_LangMatches(t *testing.T) {
	for _, tc := range []struct {
		tag, rng string
		want     bool
	}{
		{"nl", "nl", true},
		{"nl-NL", "nl", true},
		{"NL", "nl", true},
		{"nld", "nl", false},
		{"", "nl", false},
		{"en", "*", true},
		{"", "*", false},
	} {
		if got := langMatches(tc.tag, tc.rng); got != tc.want {
			t.Errorf("langMatches(%q, %q) = %v, want %v", tc.tag, tc.rng, got, tc.want)
		}
	}
}

func TestEval_PathClosure(t *testing.T) {
	q := Construct{
		Template: []Triple{T(IRI(ex+"a"), IRI(ex+"ancestor"), Var("p"))},
		Where:    []Pattern{T(IRI(ex+"a"), ZeroOrMore(IRI(ex+"within")), Var("p"))},
	}
	out, err := q.Eval(fixture())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	r, ok := out.Resource(ex + "a")
	if !ok {
		t.Fatal("expected a")
	}
	if got := r.Property(ex + "ancestor"); len(got) != 3 {
		t.Errorf("ancestors = %v, want a, b and c", got)
	}
}

func TestEval_UnionWithEmptyBranch(t *testing.T) {
	q := Construct{
		Template: []Triple{T(Var("s"), IRI(ex+"type"), IRI(ex+"Thing"))},
		Where: []Pattern{
			Values(Var("s"), IRI(ex+"c")),
			Union(
				[]Pattern{T(Var("s"), IRI(ex+"name"), Var("n"))},
				[]Pattern{},
			),
		},
	}
	out, err := q.Eval(fixture())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if _, ok := out.Resource(ex + "c"); !ok {
		t.Error("empty branch should keep c")
	}
}

func TestEval_Unsupported(t *testing.T) {
	q := Construct{
		Template: []Triple{T(Var("s"), Seq(IRI(ex+"a"), IRI(ex+"b")), Var("o"))},
		Where:    []Pattern{T(Var("s"), IRI(ex+"name"), Var("o"))},
	}
	if _, err := q.Eval(fixture()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
