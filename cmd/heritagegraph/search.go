package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/heritagegraph"
)

type searchFlags struct {
	offset    int
	limit     int
	sortBy    string
	sortOrder string
	filters   []string
}

func newSearchCmd(cf *clientFlags) *cobra.Command {
	sf := &searchFlags{}
	cmd := &cobra.Command{
		Use:       "search <objects|persons|datasets> [query]",
		Short:     "Run a faceted search",
		Long:      "Searches one entity family and prints the page with its facet counts as JSON.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"objects", "persons", "datasets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := sf.options(args)
			if err != nil {
				return err
			}
			c, err := cf.client()
			if err != nil {
				return err
			}
			res, err := search(cmd.Context(), c, args[0], opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}

	f := cmd.Flags()
	f.IntVar(&sf.offset, "offset", 0, "number of hits to skip")
	f.IntVarP(&sf.limit, "limit", "n", 10, "page size")
	f.StringVar(&sf.sortBy, "sort-by", "", "relevance, name or dateCreated")
	f.StringVar(&sf.sortOrder, "sort-order", "", "asc or desc")
	f.StringArrayVarP(&sf.filters, "filter", "f", nil, "facet filter category=value (repeatable)")
	return cmd
}

func (f *searchFlags) options(args []string) (heritagegraph.SearchOptions, error) {
	opts := heritagegraph.SearchOptions{
		Offset:    f.offset,
		Limit:     f.limit,
		SortBy:    f.sortBy,
		SortOrder: f.sortOrder,
	}
	if len(args) > 1 {
		opts.Query = args[1]
	}
	for _, kv := range f.filters {
		category, value, ok := strings.Cut(kv, "=")
		if !ok || category == "" || value == "" {
			return heritagegraph.SearchOptions{}, fmt.Errorf("filter %q must be category=value", kv)
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string][]string)
		}
		opts.Filters[category] = append(opts.Filters[category], value)
	}
	return opts, nil
}

func search(ctx context.Context, c *heritagegraph.Client, entity string, opts heritagegraph.SearchOptions) (any, error) {
	switch entity {
	case "objects":
		return c.SearchObjects().Search(ctx, opts)
	case "persons":
		return c.SearchPersons().Search(ctx, opts)
	case "datasets":
		return c.SearchDatasets().Search(ctx, opts)
	default:
		return nil, fmt.Errorf("%w: %q cannot be searched", heritagegraph.ErrUnknownEntity, entity)
	}
}
