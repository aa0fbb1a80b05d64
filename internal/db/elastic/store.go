// Package elastic executes search requests against an Elasticsearch index.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/heritagegraph/internal/db"
	"github.com/kailas-cloud/heritagegraph/internal/domain"
)

// Compile-time check: Store implements db.SearchIndex.
var _ db.SearchIndex = (*Store)(nil)

const collaborator = "elasticsearch"

// Config holds connection parameters for an Elasticsearch cluster.
type Config struct {
	Addresses []string
	Username  string
	Password  string
	APIKey    string
	Transport http.RoundTripper
}

// Store implements db.SearchIndex via go-elasticsearch.
type Store struct {
	client *elasticsearch.Client
}

// NewStore creates an Elasticsearch store.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("addresses is required")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		APIKey:    cfg.APIKey,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &Store{client: client}, nil
}

// Search posts req to index and decodes hits and aggregations.
func (s *Store) Search(ctx context.Context, index string, req *db.SearchRequest) (*db.SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("encode request: %w", err)}
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(index),
		s.client.Search.WithBody(bytes.NewReader(body)),
		s.client.Search.WithHeader(map[string]string{db.RequestIDHeader: db.RequestID(ctx)}),
	)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: domain.NewUpstreamError(collaborator, 0, err.Error())}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, &db.Error{Op: db.OpSearch, Err: upstreamError(res)}
	}

	var out db.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &out, nil
}

// Ping checks cluster connectivity.
func (s *Store) Ping(ctx context.Context) error {
	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: domain.NewUpstreamError(collaborator, 0, err.Error())}
	}
	defer res.Body.Close()
	if res.IsError() {
		return &db.Error{Op: db.OpPing, Err: upstreamError(res)}
	}
	return nil
}

type errorBody struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

// upstreamError reads the error reason from res, falling back to the status text.
func upstreamError(res *esapi.Response) error {
	msg := http.StatusText(res.StatusCode)
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil && eb.Error.Reason != "" {
		msg = eb.Error.Type + ": " + eb.Error.Reason
	}
	return domain.NewUpstreamError(collaborator, res.StatusCode, msg)
}
