package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/db/mock"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
)

func ptr[T any](v T) *T { return &v }

func newRequest(t *testing.T, p profile.Profile, o request.Options) *request.Request {
	t.Helper()
	req, err := request.New(p, o)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &req
}

func newTestRepo(t *testing.T) (*Repo, *mock.MockSearchIndex) {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := mock.NewMockSearchIndex(ctrl)
	repo, err := New(s, "heritage")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return repo, s
}

func TestNew_InvalidIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	if _, err := New(mock.NewMockSearchIndex(ctrl), "Heritage"); err == nil {
		t.Fatal("expected error for uppercase index")
	}
}

func TestBuildRequest_MatchAllDefaults(t *testing.T) {
	got, err := BuildRequest(newRequest(t, profile.Datasets, request.Options{}))
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	want := &db.SearchRequest{
		TrackTotalHits: true,
		Size:           request.DefaultLimit,
		From:           0,
		Sort:           []map[string]string{{"_score": "desc"}, {"@id": "asc"}},
		Query: db.Query{Bool: db.BoolQuery{
			Must:   []db.Clause{db.MatchAll()},
			Filter: []db.Clause{db.Term("@type", "Dataset")},
		}},
		Aggregations: map[string]db.Aggregation{
			"publishers": {Terms: db.TermsAggregation{Field: "publisher.name", Size: FacetSize}},
			"licenses":   {Terms: db.TermsAggregation{Field: "license.name", Size: FacetSize}},
			"keywords":   {Terms: db.TermsAggregation{Field: "keywords", Size: FacetSize}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRequest_QueryFiltersAndSort(t *testing.T) {
	got, err := BuildRequest(newRequest(t, profile.Objects, request.Options{
		Query:     "night watch",
		Offset:    20,
		Limit:     5,
		SortBy:    "name",
		SortOrder: "desc",
		Filters: map[string][]string{
			"materials": {"oil paint", "canvas"},
			"creators":  {"Rembrandt"},
		},
	}))
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	if got.From != 20 || got.Size != 5 {
		t.Errorf("page = %d/%d, want 20/5", got.From, got.Size)
	}
	if diff := cmp.Diff([]map[string]string{{"name.keyword": "desc"}, {"@id": "asc"}}, got.Sort); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
	wantMust := []db.Clause{db.SimpleQueryString("night watch", profile.Objects.TextFields...)}
	if diff := cmp.Diff(wantMust, got.Query.Bool.Must); diff != "" {
		t.Errorf("must mismatch (-want +got):\n%s", diff)
	}
	wantFilter := []db.Clause{
		db.Term("@type", "HeritageObject"),
		db.Term("materials.name", "oil paint"),
		db.Term("materials.name", "canvas"),
		db.Term("creators.name", "Rembrandt"),
	}
	if diff := cmp.Diff(wantFilter, got.Query.Bool.Filter); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
	if len(got.Aggregations) != len(profile.Objects.Categories) {
		t.Errorf("got %d aggregations, want %d", len(got.Aggregations), len(profile.Objects.Categories))
	}
}

func TestSearch_MapsHitsAndFacets(t *testing.T) {
	repo, s := newTestRepo(t)
	req := newRequest(t, profile.Datasets, request.Options{Query: "maps"})

	s.EXPECT().Search(gomock.Any(), "heritage", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body *db.SearchRequest) (*db.SearchResponse, error) {
			if body.Size != request.DefaultLimit {
				t.Errorf("size = %d", body.Size)
			}
			return &db.SearchResponse{
				Hits: db.Hits{
					Total: db.TotalHits{Value: 42},
					Hits: []db.Hit{
						{ID: "k1", Source: json.RawMessage(`{"@id":"https://example.org/d/2","name":"B"}`)},
						{ID: "https://example.org/d/1", Source: json.RawMessage(`{"name":"A"}`)},
					},
				},
				Aggregations: map[string]db.AggregationResult{
					"publishers": {Buckets: []db.Bucket{{Key: "Rijksmuseum", DocCount: 30}, {Key: "KB", DocCount: 12}}},
				},
			}, nil
		})

	page, err := repo.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount() != 42 {
		t.Errorf("TotalCount = %d, want 42", page.TotalCount())
	}
	if diff := cmp.Diff([]string{"https://example.org/d/2", "https://example.org/d/1"}, page.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	wantFilters := map[string][]domain.SearchResultFilter{
		"publishers": {
			{ID: "Rijksmuseum", Name: ptr("Rijksmuseum"), TotalCount: 30},
			{ID: "KB", Name: ptr("KB"), TotalCount: 12},
		},
		"licenses": {},
		"keywords": {},
	}
	if diff := cmp.Diff(wantFilters, page.Filters()); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_NoHits(t *testing.T) {
	repo, s := newTestRepo(t)
	req := newRequest(t, profile.Persons, request.Options{})

	s.EXPECT().Search(gomock.Any(), "heritage", gomock.Any()).Return(&db.SearchResponse{}, nil)

	page, err := repo.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalCount() != 0 || len(page.IDs()) != 0 {
		t.Errorf("got %d/%v, want empty page", page.TotalCount(), page.IDs())
	}
	if len(page.Filters()) != len(profile.Persons.Categories) {
		t.Errorf("got %d facet categories, want %d", len(page.Filters()), len(profile.Persons.Categories))
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	repo, s := newTestRepo(t)
	req := newRequest(t, profile.Objects, request.Options{})

	s.EXPECT().Search(gomock.Any(), "heritage", gomock.Any()).
		Return(nil, domain.NewUpstreamError("elasticsearch", 503, "unavailable"))

	_, err := repo.Search(context.Background(), req)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
