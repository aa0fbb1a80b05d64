package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/heritagegraph"
)

// clientFlags are the connection settings shared by the query commands.
type clientFlags struct {
	endpoint    string
	esAddresses []string
	esIndex     string
	locale      string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "heritagegraph",
		Short:        "Project and search a heritage knowledge graph",
		SilenceUsage: true,
	}

	cf := &clientFlags{}
	pf := root.PersistentFlags()
	pf.StringVar(&cf.endpoint, "endpoint", os.Getenv("SPARQL_ENDPOINT"), "SPARQL query endpoint")
	pf.StringSliceVar(&cf.esAddresses, "es-address", splitEnv("ES_ADDRESS"), "Elasticsearch address (repeatable)")
	pf.StringVar(&cf.esIndex, "es-index", envOr("ES_INDEX", "heritage"), "Elasticsearch index")
	pf.StringVar(&cf.locale, "locale", "", "locale of projected literals (en, nl)")

	root.AddCommand(
		newServeCmd(),
		newGetCmd(cf),
		newSearchCmd(cf),
		newProvenanceCmd(cf),
		newGuidesCmd(cf),
		newVersionCmd(),
	)
	return root
}

// client connects with the shared flags.
func (f *clientFlags) client() (*heritagegraph.Client, error) {
	opts := []heritagegraph.Option{
		heritagegraph.WithSPARQLEndpoint(f.endpoint),
		heritagegraph.WithLocale(f.locale),
	}
	if len(f.esAddresses) > 0 {
		opts = append(opts, heritagegraph.WithElasticsearch(f.esIndex, f.esAddresses...))
	}
	c, err := heritagegraph.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return c, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
