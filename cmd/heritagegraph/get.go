package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/heritagegraph"
)

// entities are the families the get command accepts.
var entities = []string{"objects", "persons", "datasets", "provenance-events", "research-guides"}

func newGetCmd(cf *clientFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "get <entity> <id>...",
		Short:     "Load records by identifier",
		Long:      "Loads records of one entity family and prints them as JSON, in argument order.",
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: entities,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cf.client()
			if err != nil {
				return err
			}
			recs, err := getMany(cmd, c, args[0], args[1:])
			if err != nil {
				return err
			}
			return printJSON(cmd, recs)
		},
	}
}

func getMany(cmd *cobra.Command, c *heritagegraph.Client, entity string, ids []string) (any, error) {
	ctx := cmd.Context()
	switch entity {
	case "objects":
		return c.Objects().GetMany(ctx, "", ids)
	case "persons":
		return c.Persons().GetMany(ctx, "", ids)
	case "datasets":
		return c.Datasets().GetMany(ctx, "", ids)
	case "provenance-events":
		return c.ProvenanceEvents().GetMany(ctx, "", ids)
	case "research-guides":
		return c.ResearchGuides().GetMany(ctx, "", ids)
	default:
		return nil, fmt.Errorf("%w: %q", heritagegraph.ErrUnknownEntity, entity)
	}
}

func newProvenanceCmd(cf *clientFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "provenance <object-id>",
		Short: "List the provenance events of an object in chronological order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cf.client()
			if err != nil {
				return err
			}
			events, err := c.ProvenanceEvents().ForObject(cmd.Context(), "", args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, events)
		},
	}
}

func newGuidesCmd(cf *clientFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "List the top-level research guides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cf.client()
			if err != nil {
				return err
			}
			guides, err := c.ResearchGuides().TopLevel(cmd.Context(), "")
			if err != nil {
				return err
			}
			return printJSON(cmd, guides)
		},
	}
}
