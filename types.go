package heritagegraph

import (
	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
)

// Locale selects the language of projected literals.
type Locale = domain.Locale

// Supported locales.
const (
	LocaleEnglish = domain.LocaleEnglish
	LocaleDutch   = domain.LocaleDutch
)

// Records returned by the client.
type (
	Thing           = domain.Thing
	Term            = domain.Term
	Agent           = domain.Agent
	Place           = domain.Place
	TimeSpan        = domain.TimeSpan
	Image           = domain.Image
	Dataset         = domain.Dataset
	HeritageObject  = domain.HeritageObject
	Person          = domain.Person
	ProvenanceEvent = domain.ProvenanceEvent
	ResearchGuide   = domain.ResearchGuide
	Citation        = domain.Citation
)

// SearchOptions are the parameters of a faceted search. Zero values take
// the defaults: match-all query, limit 10, the entity's default sort.
type SearchOptions = request.Options

// SearchResult is a page of records with facet counts.
type SearchResult[T any] = domain.SearchResult[T]

// SearchResultFilter is one facet bucket.
type SearchResultFilter = domain.SearchResultFilter

// Errors returned by the client. Match with errors.Is.
var (
	ErrInvalidSearchOptions = domain.ErrInvalidSearchOptions
	ErrInvalidLocale        = domain.ErrInvalidLocale
	ErrUpstream             = domain.ErrUpstream
	ErrUnknownEntity        = domain.ErrUnknownEntity
)
