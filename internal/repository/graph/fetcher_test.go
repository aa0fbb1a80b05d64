package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/heritagegraph/internal/db/mock"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
	"github.com/kailas-cloud/heritagegraph/internal/vocab"
)

const testClass = vocab.HeritageObject

func idOnly(r rdf.Resource) string { return r.ID() }

func newTestFetcher(t *testing.T) (*Fetcher[string], *mock.MockGraphStore, *[][]string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := mock.NewMockGraphStore(ctrl)
	var built [][]string
	build := func(ids []string, _ domain.Locale) (string, error) {
		built = append(built, ids)
		return "CONSTRUCT", nil
	}
	return NewFetcher(s, "objects", testClass, build, idOnly), s, &built
}

func typedGraph(ids ...string) *rdf.Graph {
	g := rdf.NewGraph()
	for _, id := range ids {
		g.Add(rdf.IRI(id), vocab.RDFType, rdf.IRI(testClass))
	}
	return g
}

func TestGetByIDs_EmptyMakesNoCall(t *testing.T) {
	f, _, built := newTestFetcher(t)

	for _, ids := range [][]string{nil, {}, {"", "not-an-iri", "objects/1"}} {
		got, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, ids)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("GetByIDs(%v) = %#v, want empty slice", ids, got)
		}
	}
	if len(*built) != 0 {
		t.Errorf("query built %d times, want 0", len(*built))
	}
}

func TestGetByIDs_PreservesCallerOrder(t *testing.T) {
	f, s, _ := newTestFetcher(t)
	a, b, c := "https://example.org/o/a", "https://example.org/o/b", "https://example.org/o/c"

	s.EXPECT().Construct(gomock.Any(), "CONSTRUCT").Return(typedGraph(c, a), nil)

	got, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, []string{a, b, c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{a, c}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByIDs_RandomBatches(t *testing.T) {
	faker := gofakeit.New(42)
	for round := range 5 {
		f, s, built := newTestFetcher(t)

		ids := make([]string, 20)
		for i := range ids {
			ids[i] = fmt.Sprintf("https://example.org/o/%s", faker.UUID())
		}
		var present, want []string
		for i, id := range ids {
			if i%3 != 0 {
				present = append(present, id)
				want = append(want, id)
			}
		}
		faker.ShuffleStrings(present)

		s.EXPECT().Construct(gomock.Any(), gomock.Any()).Return(typedGraph(present...), nil)

		got, err := f.GetByIDs(context.Background(), domain.LocaleDutch, ids)
		if err != nil {
			t.Fatalf("round %d: unexpected error: %v", round, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round %d: mismatch (-want +got):\n%s", round, diff)
		}
		if len((*built)[0]) != len(ids) {
			t.Errorf("round %d: query built for %d ids, want %d", round, len((*built)[0]), len(ids))
		}
	}
}

func TestGetByIDs_SkipsInvalidAndDuplicateInQuery(t *testing.T) {
	f, s, built := newTestFetcher(t)
	a := "https://example.org/o/a"

	s.EXPECT().Construct(gomock.Any(), gomock.Any()).Return(typedGraph(a), nil)

	got, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, []string{"bad id", a, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{a}, (*built)[0]); diff != "" {
		t.Errorf("query ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{a, a}, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByIDs_IgnoresResourcesOfOtherClasses(t *testing.T) {
	f, s, _ := newTestFetcher(t)
	obj, creator := "https://example.org/o/1", "https://example.org/p/1"

	g := typedGraph(obj)
	g.Add(rdf.IRI(obj), vocab.Creator, rdf.IRI(creator))
	g.Add(rdf.IRI(creator), vocab.Name, rdf.Literal("Rembrandt"))
	s.EXPECT().Construct(gomock.Any(), gomock.Any()).Return(g, nil)

	got, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, []string{creator, obj})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{obj}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByIDs_UpstreamError(t *testing.T) {
	f, s, _ := newTestFetcher(t)
	s.EXPECT().Construct(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewUpstreamError("sparql", 500, "boom"))

	_, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, []string{"https://example.org/o/1"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGetByIDs_BuildError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockGraphStore(ctrl)
	build := func([]string, domain.Locale) (string, error) { return "", errors.New("bad") }
	f := NewFetcher(s, "objects", testClass, build, idOnly)

	if _, err := f.GetByIDs(context.Background(), domain.LocaleEnglish, []string{"https://example.org/o/1"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetByID(t *testing.T) {
	f, s, built := newTestFetcher(t)
	a := "https://example.org/o/a"

	got, err := f.GetByID(context.Background(), domain.LocaleEnglish, "a b c")
	if err != nil || got != nil {
		t.Fatalf("invalid id: got %v, %v", got, err)
	}
	if len(*built) != 0 {
		t.Fatal("invalid id must not reach the store")
	}

	s.EXPECT().Construct(gomock.Any(), gomock.Any()).Return(typedGraph(a), nil)
	got, err = f.GetByID(context.Background(), domain.LocaleEnglish, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != a {
		t.Errorf("GetByID = %v, want %s", got, a)
	}

	s.EXPECT().Construct(gomock.Any(), gomock.Any()).Return(rdf.NewGraph(), nil)
	got, err = f.GetByID(context.Background(), domain.LocaleEnglish, "https://example.org/o/missing")
	if err != nil || got != nil {
		t.Errorf("missing id: got %v, %v", got, err)
	}
}
