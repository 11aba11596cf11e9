package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// NewThreatsCommand creates the threats command group
func NewThreatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "threats",
		Aliases: []string{"threat"},
		Short:   "Manage threat intelligence",
		Long:    "Search threat intelligence records",
	}

	cmd.AddCommand(newThreatsListCommand())
	cmd.AddCommand(newThreatsGetCommand())

	return cmd
}

func newThreatsListCommand() *cobra.Command {
	var (
		category   string
		confidence string
		page       int
		pageSize   int
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List threats",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &vigil.ThreatListParams{
				ListParams: vigil.ListParams{Page: page, PageSize: pageSize},
				Category:   category,
				Confidence: confidence,
			}

			ctx := context.Background()
			if all {
				return renderResult(client.Threats().ListAll(ctx, params))
			}

			return renderResult(client.Threats().List(ctx, params))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (malware, phishing, c2)")
	cmd.Flags().StringVar(&confidence, "confidence", "", "filter by confidence (low, medium, high)")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newThreatsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <threat-id>",
		Short: "Show one threat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Threats().Get(context.Background(), args[0]))
		},
	}
}
