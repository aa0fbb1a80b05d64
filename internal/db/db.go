package db

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/heritagegraph/internal/rdf"
)

//go:generate mockgen -destination=mock/mock.go -package=mock . GraphStore,SearchIndex

// Pinger checks collaborator connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GraphStore executes graph queries against a triple store.
type GraphStore interface {
	Pinger
	// Construct runs a CONSTRUCT query and loads the resulting triples.
	Construct(ctx context.Context, query string) (*rdf.Graph, error)
}

// SearchIndex executes search requests against a full-text index.
type SearchIndex interface {
	Pinger
	Search(ctx context.Context, index string, req *SearchRequest) (*SearchResponse, error)
}

// WaitForReady polls p until it responds or timeout expires.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for collaborator: %w", ctx.Err())
		case <-ticker.C:
			if err := p.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
