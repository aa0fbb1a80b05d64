package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSearchOptions signals search options that fail validation.
	ErrInvalidSearchOptions = errors.New("invalid search options")
	// ErrInvalidLocale signals an unsupported locale code.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrUpstream signals a failed call to the triple store or the search index.
	ErrUpstream = errors.New("upstream failure")
	// ErrUnknownEntity signals an entity family the layer does not serve.
	ErrUnknownEntity = errors.New("unknown entity")
)

// UpstreamError wraps ErrUpstream with the collaborator's status and message.
type UpstreamError struct {
	Collaborator string
	StatusCode   int
	Message      string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s: %s", ErrUpstream.Error(), e.Collaborator, e.Message)
	}
	return fmt.Sprintf("%s: %s returned %d: %s", ErrUpstream.Error(), e.Collaborator, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// NewUpstreamError creates an upstream failure for the named collaborator.
func NewUpstreamError(collaborator string, statusCode int, message string) error {
	return &UpstreamError{Collaborator: collaborator, StatusCode: statusCode, Message: message}
}
