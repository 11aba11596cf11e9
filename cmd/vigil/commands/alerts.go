package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// NewAlertsCommand creates the alerts command group
func NewAlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "alerts",
		Aliases: []string{"alert"},
		Short:   "Manage alerts",
		Long:    "Search and inspect detection alerts",
	}

	cmd.AddCommand(newAlertsListCommand())
	cmd.AddCommand(newAlertsGetCommand())

	return cmd
}

func newAlertsListCommand() *cobra.Command {
	var (
		severity string
		status   string
		query    string
		page     int
		pageSize int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &vigil.AlertListParams{
				ListParams: vigil.ListParams{Page: page, PageSize: pageSize},
				Severity:   severity,
				Status:     status,
				Query:      query,
			}

			ctx := context.Background()
			if all {
				return renderResult(client.Alerts().ListAll(ctx, params))
			}

			return renderResult(client.Alerts().List(ctx, params))
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "", "filter by severity (low, medium, high, critical)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&query, "query", "", "free-text search query")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newAlertsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <alert-id>",
		Short: "Show one alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Alerts().Get(context.Background(), args[0]))
		},
	}
}
