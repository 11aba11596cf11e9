package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// NewCasesCommand creates the cases command group
func NewCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cases",
		Aliases: []string{"case"},
		Short:   "Manage investigation cases",
		Long:    "Search and inspect investigation cases and their comment threads",
	}

	cmd.AddCommand(newCasesListCommand())
	cmd.AddCommand(newCasesGetCommand())
	cmd.AddCommand(newCasesCommentsCommand())

	return cmd
}

func newCasesListCommand() *cobra.Command {
	var (
		status   string
		assignee string
		page     int
		pageSize int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &vigil.CaseListParams{
				ListParams: vigil.ListParams{Page: page, PageSize: pageSize},
				Status:     status,
				Assignee:   assignee,
			}

			ctx := context.Background()
			if all {
				return renderResult(client.Cases().ListAll(ctx, params))
			}

			return renderResult(client.Cases().List(ctx, params))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&assignee, "assignee", "", "filter by assignee")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newCasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <case-id>",
		Short: "Show one case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Cases().Get(context.Background(), args[0]))
		},
	}
}

func newCasesCommentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <case-id>",
		Short: "List a case's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Cases().ListComments(context.Background(), args[0]))
		},
	}
}
