package chi

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/heritagegraph/internal/domain"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/profile"
	"github.com/kailas-cloud/heritagegraph/internal/domain/search/request"
)

// bindQuery binds the form-exploded query parameter name into dest.
func bindQuery(r *http.Request, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return fmt.Errorf("invalid query parameter %s: %w", name, err)
	}
	return nil
}

// locale returns the requested locale or the server default.
func (s *Server) locale(r *http.Request) (domain.Locale, error) {
	var raw string
	if err := bindQuery(r, "locale", false, &raw); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidLocale, err)
	}
	if raw == "" {
		return s.deps.DefaultLocale, nil
	}
	return domain.ParseLocale(raw)
}

// searchOptions reads the search parameters. Every facet category of p is
// accepted as a repeatable parameter; unrelated parameters are ignored.
func searchOptions(r *http.Request, p profile.Profile) (request.Options, error) {
	var o request.Options
	params := []struct {
		name string
		dest any
	}{
		{"query", &o.Query},
		{"offset", &o.Offset},
		{"limit", &o.Limit},
		{"sortBy", &o.SortBy},
		{"sortOrder", &o.SortOrder},
	}
	for _, prm := range params {
		if err := bindQuery(r, prm.name, false, prm.dest); err != nil {
			return request.Options{}, err
		}
	}

	for _, c := range p.Categories {
		var values []string
		if err := bindQuery(r, c.Name, false, &values); err != nil {
			return request.Options{}, err
		}
		if len(values) == 0 {
			continue
		}
		if o.Filters == nil {
			o.Filters = make(map[string][]string)
		}
		o.Filters[c.Name] = values
	}
	return o, nil
}
