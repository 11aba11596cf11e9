package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// NewVulnerabilitiesCommand creates the vulnerabilities command group
func NewVulnerabilitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vulnerabilities",
		Aliases: []string{"vulns", "vuln"},
		Short:   "Manage vulnerability findings",
		Long:    "Search vulnerability findings across the monitored estate",
	}

	cmd.AddCommand(newVulnerabilitiesListCommand())
	cmd.AddCommand(newVulnerabilitiesGetCommand())

	return cmd
}

func newVulnerabilitiesListCommand() *cobra.Command {
	var (
		minScore float64
		cve      string
		page     int
		pageSize int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vulnerabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &vigil.VulnerabilityListParams{
				ListParams: vigil.ListParams{Page: page, PageSize: pageSize},
				MinScore:   minScore,
				CVE:        cve,
			}

			ctx := context.Background()
			if all {
				return renderResult(client.Vulnerabilities().ListAll(ctx, params))
			}

			return renderResult(client.Vulnerabilities().List(ctx, params))
		},
	}

	cmd.Flags().Float64Var(&minScore, "min-score", 0, "minimum CVSS score")
	cmd.Flags().StringVar(&cve, "cve", "", "filter by CVE identifier")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newVulnerabilitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <vulnerability-id>",
		Short: "Show one vulnerability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Vulnerabilities().Get(context.Background(), args[0]))
		},
	}
}
