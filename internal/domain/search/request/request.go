// Package request validates search options against an entity profile.
package request

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/filter"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/sorting"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultLimit   = 10
	MaxLimit       = 100
	// MatchAll is the query that matches every document.
	MatchAll = "*"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options are the caller's search parameters before defaults apply.
type Options struct {
	Query     string              `validate:"max=4096"`
	Offset    int                 `validate:"gte=0"`
	Limit     int                 `validate:"gte=0,lte=100"`
	SortBy    string              `validate:"omitempty,oneof=relevance name dateCreated"`
	SortOrder string              `validate:"omitempty,oneof=asc desc"`
	Filters   map[string][]string `validate:"dive,keys,required,endkeys,max=32,dive,required"`
	Locale    domain.Locale
}

// Request is a validated search query for one entity family.
type Request struct {
	profile   profile.Profile
	query     string
	offset    int
	limit     int
	sortBy    sorting.Key
	sortOrder domain.SortOrder
	filters   map[string][]string
	selection filter.Selection
	locale    domain.Locale
}

// New validates o against p and applies defaults: query "*", offset 0,
// limit 10, the profile's default sort and the sort key's default order.
// Invalid options wrap domain.ErrInvalidSearchOptions.
func New(p profile.Profile, o Options) (Request, error) {
	if err := validate.Struct(o); err != nil {
		return Request{}, invalid(describe(err))
	}

	query := strings.TrimSpace(o.Query)
	if query == "" {
		query = MatchAll
	}
	limit := o.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	sortBy := p.DefaultSort
	if o.SortBy != "" {
		sortBy = sorting.Key(o.SortBy)
	}
	if _, ok := p.SortField(sortBy); !ok {
		return Request{}, invalid(fmt.Sprintf("%s cannot be sorted by %q", p.Entity, sortBy))
	}
	sortOrder := sortBy.DefaultOrder()
	if o.SortOrder != "" {
		sortOrder, _ = sorting.ParseOrder(o.SortOrder)
	}

	filters := make(map[string][]string, len(p.Categories))
	var conds []filter.Condition
	for name := range o.Filters {
		if _, ok := p.Category(name); !ok {
			return Request{}, invalid(fmt.Sprintf("unknown filter %q for %s", name, p.Entity))
		}
	}
	for _, c := range p.Categories {
		values := o.Filters[c.Name]
		filters[c.Name] = slices.Clone(values)
		if filters[c.Name] == nil {
			filters[c.Name] = []string{}
		}
		for _, v := range values {
			cond, err := filter.NewMatch(c.Field, v)
			if err != nil {
				return Request{}, invalid(err.Error())
			}
			conds = append(conds, cond)
		}
	}
	selection, err := filter.NewSelection(conds)
	if err != nil {
		return Request{}, invalid(err.Error())
	}

	return Request{
		profile:   p,
		query:     query,
		offset:    o.Offset,
		limit:     limit,
		sortBy:    sortBy,
		sortOrder: sortOrder,
		filters:   filters,
		selection: selection,
		locale:    o.Locale.OrDefault(),
	}, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidSearchOptions, msg)
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Profile returns the entity profile.
func (r *Request) Profile() profile.Profile { return r.profile }

// Query returns the free-text query; "*" matches everything.
func (r *Request) Query() string { return r.query }

// IsMatchAll reports whether the query matches every document.
func (r *Request) IsMatchAll() bool { return r.query == MatchAll }

// Offset returns the number of hits to skip.
func (r *Request) Offset() int { return r.offset }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// SortBy returns the sort key.
func (r *Request) SortBy() sorting.Key { return r.sortBy }

// SortOrder returns the sort direction.
func (r *Request) SortOrder() domain.SortOrder { return r.sortOrder }

// Filters returns the selected values per category. Every category of the
// profile is present.
func (r *Request) Filters() map[string][]string { return r.filters }

// Selection returns the index conditions of the selected filter values.
func (r *Request) Selection() filter.Selection { return r.selection }

// Locale returns the locale used to hydrate hits.
func (r *Request) Locale() domain.Locale { return r.locale }
