// Package sparql is a SPARQL 1.1 protocol client for the triple store.
package sparql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/rdf"
)

// Compile-time check: Store implements db.GraphStore.
var _ db.GraphStore = (*Store)(nil)

const (
	collaborator = "sparql"

	acceptTriples = "application/n-triples, application/n-quads;q=0.9"
	acceptResults = "application/sparql-results+json"

	// maxErrorBody caps how much of an error response is kept in the message.
	maxErrorBody = 512
)

// Config holds connection parameters for a SPARQL endpoint.
type Config struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Store executes queries over HTTP POST with a form-encoded body.
type Store struct {
	endpoint string
	client   *http.Client
}

// NewStore creates a SPARQL store.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", cfg.Endpoint)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Store{endpoint: cfg.Endpoint, client: client}, nil
}

// Construct runs query and decodes the N-Triples response.
func (s *Store) Construct(ctx context.Context, query string) (*rdf.Graph, error) {
	resp, err := s.post(ctx, query, acceptTriples)
	if err != nil {
		return nil, &db.Error{Op: db.OpConstruct, Err: err}
	}
	defer resp.Body.Close()

	g, err := rdf.Decode(resp.Body)
	if err != nil {
		return nil, &db.Error{Op: db.OpConstruct, Err: err}
	}
	return g, nil
}

// Ping asks the endpoint an empty query.
func (s *Store) Ping(ctx context.Context) error {
	resp, err := s.post(ctx, "ASK {}", acceptResults)
	if err != nil {
		return &db.Error{Op: db.OpAsk, Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// post sends query and returns a response with a 2xx status. Other statuses
// and transport failures become upstream errors.
func (s *Store) post(ctx context.Context, query, accept string) (*http.Response, error) {
	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", accept)
	req.Header.Set(db.RequestIDHeader, db.RequestID(ctx))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(collaborator, 0, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, domain.NewUpstreamError(collaborator, resp.StatusCode, msg)
	}
	return resp, nil
}
