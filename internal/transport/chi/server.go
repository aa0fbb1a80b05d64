// Package chi serves the projection and search layer over HTTP.
package chi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
	healthuc "github.com/kailas-cloud/heritagegraph/internal/usecase/health"
)

const maxBatchSize = 100

// Lookup loads records of one entity family by identifier.
type Lookup[T any] interface {
	GetByID(ctx context.Context, locale domain.Locale, id string) (*T, error)
	GetByIDs(ctx context.Context, locale domain.Locale, ids []string) ([]T, error)
}

// Searcher runs faceted searches for one entity family.
type Searcher[T any] interface {
	Profile() profile.Profile
	Search(ctx context.Context, o request.Options) (domain.SearchResult[T], error)
}

// ProvenanceLookup loads provenance events.
type ProvenanceLookup interface {
	Lookup[domain.ProvenanceEvent]
	GetByObjectID(ctx context.Context, locale domain.Locale, objectID string) ([]domain.ProvenanceEvent, error)
}

// GuideLookup loads research guides.
type GuideLookup interface {
	Lookup[domain.ResearchGuide]
	GetTopLevels(ctx context.Context, locale domain.Locale) ([]domain.ResearchGuide, error)
}

// Deps are the services behind the routes. Searchers may be nil when no
// search index is configured; their routes then answer 501.
type Deps struct {
	Objects          Lookup[domain.HeritageObject]
	Persons          Lookup[domain.Person]
	Datasets         Lookup[domain.Dataset]
	ProvenanceEvents ProvenanceLookup
	ResearchGuides   GuideLookup

	ObjectSearch  Searcher[domain.HeritageObject]
	PersonSearch  Searcher[domain.Person]
	DatasetSearch Searcher[domain.Dataset]

	Health        *healthuc.Service
	DefaultLocale domain.Locale
	APIKeys       []string
	Logger        *zap.Logger
}

// Server holds the HTTP handlers.
type Server struct {
	deps Deps
}

// NewServer creates an HTTP API server.
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	deps.DefaultLocale = deps.DefaultLocale.OrDefault()
	return &Server{deps: deps}
}

// Handler returns the router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.use(r)

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/objects", func(r chi.Router) {
			entityRoutes(r, s, s.deps.Objects)
			r.Get("/search", searchHandler(s, s.deps.ObjectSearch))
		})
		r.Route("/persons", func(r chi.Router) {
			entityRoutes(r, s, s.deps.Persons)
			r.Get("/search", searchHandler(s, s.deps.PersonSearch))
		})
		r.Route("/datasets", func(r chi.Router) {
			entityRoutes(r, s, s.deps.Datasets)
			r.Get("/search", searchHandler(s, s.deps.DatasetSearch))
		})
		r.Route("/provenance-events", func(r chi.Router) {
			entityRoutes[domain.ProvenanceEvent](r, s, s.deps.ProvenanceEvents)
			r.Get("/by-object", s.ProvenanceByObject)
		})
		r.Route("/research-guides", func(r chi.Router) {
			entityRoutes[domain.ResearchGuide](r, s, s.deps.ResearchGuides)
			r.Get("/top-level", s.TopLevelGuides)
		})
		r.Get("/{entity}", s.UnknownEntity)
		r.Get("/{entity}/*", s.UnknownEntity)
	})
	return r
}

func entityRoutes[T any](r chi.Router, s *Server, l Lookup[T]) {
	r.Get("/", getHandler(s, l))
	r.Get("/batch", batchHandler(s, l))
}

// getHandler handles GET /api/v1/{entity}?id=.
func getHandler[T any](s *Server, l Lookup[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale, err := s.locale(r)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		var id string
		if err := bindQuery(r, "id", true, &id); err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
			return
		}

		rec, err := l.GetByID(r.Context(), locale, id)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, ErrorCodeNotFound, fmt.Sprintf("%s not found", id))
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// batchHandler handles GET /api/v1/{entity}/batch?id=a&id=b.
func batchHandler[T any](s *Server, l Lookup[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale, err := s.locale(r)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		var ids []string
		if err := bindQuery(r, "id", true, &ids); err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
			return
		}
		if len(ids) > maxBatchSize {
			writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed,
				fmt.Sprintf("at most %d ids per batch", maxBatchSize))
			return
		}

		recs, err := l.GetByIDs(r.Context(), locale, ids)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse(recs))
	}
}

// searchHandler handles GET /api/v1/{entity}/search.
func searchHandler[T any](s *Server, svc Searcher[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeError(w, http.StatusNotImplemented, ErrorCodeNotImplemented, "search is not configured")
			return
		}
		locale, err := s.locale(r)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		opts, err := searchOptions(r, svc.Profile())
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
			return
		}
		opts.Locale = locale

		res, err := svc.Search(r.Context(), opts)
		if err != nil {
			handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// ProvenanceByObject handles GET /api/v1/provenance-events/by-object?id=.
func (s *Server) ProvenanceByObject(w http.ResponseWriter, r *http.Request) {
	locale, err := s.locale(r)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	var id string
	if err := bindQuery(r, "id", true, &id); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	events, err := s.deps.ProvenanceEvents.GetByObjectID(r.Context(), locale, id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(events))
}

// UnknownEntity answers requests for entity families that are not served.
func (s *Server) UnknownEntity(w http.ResponseWriter, r *http.Request) {
	handleDomainError(w, r, fmt.Errorf("%w: %q", domain.ErrUnknownEntity, chi.URLParam(r, "entity")))
}

// TopLevelGuides handles GET /api/v1/research-guides/top-level.
func (s *Server) TopLevelGuides(w http.ResponseWriter, r *http.Request) {
	locale, err := s.locale(r)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	guides, err := s.deps.ResearchGuides.GetTopLevels(r.Context(), locale)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse(guides))
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.deps.Health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// ListResponse wraps an ordered list of records.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func listResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items}
}
