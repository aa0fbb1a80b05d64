package search

import (
	"context"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/result"
)

// Index runs searches against the search index.
type Index interface {
	Search(ctx context.Context, req *request.Request) (result.Page, error)
}

// Records loads records from the triple store in the order of ids.
type Records[T any] interface {
	GetByIDs(ctx context.Context, locale domain.Locale, ids []string) ([]T, error)
}
