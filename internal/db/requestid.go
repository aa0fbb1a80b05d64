package db

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id to both collaborators.
const RequestIDHeader = "X-Request-ID"

// RequestID returns the request id assigned by the HTTP middleware, or a
// fresh one for calls that did not come in over HTTP.
func RequestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
