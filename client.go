// Package heritagegraph projects a heritage knowledge graph into flat,
// locale-aware records and runs faceted searches over them.
package heritagegraph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/db/elastic"
	"github.com/kailas-cloud/heritagegraph/internal/db/sparql"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	datasetrepo "github.com/kailas-cloud/heritagegraph/internal/repository/dataset"
	guiderepo "github.com/kailas-cloud/heritagegraph/internal/repository/guide"
	objectrepo "github.com/kailas-cloud/heritagegraph/internal/repository/object"
	personrepo "github.com/kailas-cloud/heritagegraph/internal/repository/person"
	provenancerepo "github.com/kailas-cloud/heritagegraph/internal/repository/provenance"
	searchrepo "github.com/kailas-cloud/heritagegraph/internal/repository/search"
	searchuc "github.com/kailas-cloud/heritagegraph/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// ErrSearchDisabled is returned by searches when no index is configured.
var ErrSearchDisabled = errors.New("heritagegraph: search is not configured (use WithElasticsearch)")

// Client is the heritagegraph SDK entry point.
type Client struct {
	graph  db.GraphStore
	index  db.SearchIndex
	locale domain.Locale

	objects    *objectrepo.Repo
	persons    *personrepo.Repo
	datasets   *datasetrepo.Repo
	provenance *provenancerepo.Repo
	guides     *guiderepo.Repo

	objectSearch  *searchuc.Service[domain.HeritageObject]
	personSearch  *searchuc.Service[domain.Person]
	datasetSearch *searchuc.Service[domain.Dataset]
}

// New creates a Client and waits until its collaborators respond.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.endpoint == "" {
		return nil, errors.New("heritagegraph: SPARQL endpoint required (use WithSPARQLEndpoint)")
	}
	locale, err := domain.ParseLocale(cfg.locale)
	if err != nil {
		return nil, fmt.Errorf("heritagegraph: %w", err)
	}

	graphStore, err := sparql.NewStore(sparql.Config{
		Endpoint:   cfg.endpoint,
		Timeout:    cfg.timeout,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("heritagegraph: create sparql store: %w", err)
	}

	var index db.SearchIndex
	if len(cfg.esAddresses) > 0 {
		es, err := elastic.NewStore(elastic.Config{
			Addresses: cfg.esAddresses,
			Username:  cfg.esUsername,
			Password:  cfg.esPassword,
			APIKey:    cfg.esAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("heritagegraph: create elasticsearch store: %w", err)
		}
		index = es
	}

	ctx := context.Background()
	if err := db.WaitForReady(ctx, graphStore, cfg.readinessTimeout); err != nil {
		return nil, fmt.Errorf("heritagegraph: triple store not ready: %w", err)
	}
	if index != nil {
		if err := db.WaitForReady(ctx, index, cfg.readinessTimeout); err != nil {
			return nil, fmt.Errorf("heritagegraph: search index not ready: %w", err)
		}
	}

	return wireClient(graphStore, index, cfg.esIndex, locale)
}

func wireClient(graph db.GraphStore, index db.SearchIndex, indexName string, locale domain.Locale) (*Client, error) {
	c := &Client{
		graph:      graph,
		index:      index,
		locale:     locale,
		objects:    objectrepo.New(graph),
		persons:    personrepo.New(graph),
		datasets:   datasetrepo.New(graph),
		provenance: provenancerepo.New(graph),
		guides:     guiderepo.New(graph),
	}
	if index == nil {
		return c, nil
	}

	searchRepo, err := searchrepo.New(index, indexName)
	if err != nil {
		return nil, fmt.Errorf("heritagegraph: %w", err)
	}
	c.objectSearch = searchuc.New[domain.HeritageObject](profile.Objects, searchRepo, c.objects)
	c.personSearch = searchuc.New[domain.Person](profile.Persons, searchRepo, c.persons)
	c.datasetSearch = searchuc.New[domain.Dataset](profile.Datasets, searchRepo, c.datasets)
	return c, nil
}

// Ping checks connectivity to the triple store and, when configured, the
// search index.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.graph.Ping(ctx); err != nil {
		return fmt.Errorf("ping graph: %w", err)
	}
	if c.index != nil {
		if err := c.index.Ping(ctx); err != nil {
			return fmt.Errorf("ping search: %w", err)
		}
	}
	return nil
}

// Objects returns the heritage object lookups.
func (c *Client) Objects() *RecordService[HeritageObject] {
	return &RecordService[HeritageObject]{repo: c.objects, locale: c.locale}
}

// Persons returns the person lookups.
func (c *Client) Persons() *RecordService[Person] {
	return &RecordService[Person]{repo: c.persons, locale: c.locale}
}

// Datasets returns the dataset lookups.
func (c *Client) Datasets() *RecordService[Dataset] {
	return &RecordService[Dataset]{repo: c.datasets, locale: c.locale}
}

// ProvenanceEvents returns the provenance event lookups.
func (c *Client) ProvenanceEvents() *ProvenanceService {
	return &ProvenanceService{
		RecordService: RecordService[ProvenanceEvent]{repo: c.provenance, locale: c.locale},
		repo:          c.provenance,
	}
}

// ResearchGuides returns the research guide lookups.
func (c *Client) ResearchGuides() *GuideService {
	return &GuideService{
		RecordService: RecordService[ResearchGuide]{repo: c.guides, locale: c.locale},
		repo:          c.guides,
	}
}

// SearchObjects returns the heritage object search.
func (c *Client) SearchObjects() *SearchService[HeritageObject] {
	return newSearchService(c.objectSearch, c.locale)
}

// SearchPersons returns the person search.
func (c *Client) SearchPersons() *SearchService[Person] {
	return newSearchService(c.personSearch, c.locale)
}

// SearchDatasets returns the dataset search.
func (c *Client) SearchDatasets() *SearchService[Dataset] {
	return newSearchService(c.datasetSearch, c.locale)
}
