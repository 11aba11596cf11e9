package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// NewEndpointsCommand creates the endpoints command group
func NewEndpointsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"endpoint"},
		Short:   "Manage monitored endpoints",
		Long:    "Search monitored endpoints and inspect their software inventory",
	}

	cmd.AddCommand(newEndpointsListCommand())
	cmd.AddCommand(newEndpointsGetCommand())
	cmd.AddCommand(newEndpointsSoftwareCommand())

	return cmd
}

func newEndpointsListCommand() *cobra.Command {
	var (
		hostname string
		platform string
		isolated bool
		page     int
		pageSize int
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &vigil.EndpointListParams{
				ListParams: vigil.ListParams{Page: page, PageSize: pageSize},
				Hostname:   hostname,
				Platform:   platform,
			}

			// Only filter on isolation when the flag was given.
			if cmd.Flags().Changed("isolated") {
				params.Isolated = &isolated
			}

			ctx := context.Background()
			if all {
				return renderResult(client.Endpoints().ListAll(ctx, params))
			}

			return renderResult(client.Endpoints().List(ctx, params))
		},
	}

	cmd.Flags().StringVar(&hostname, "hostname", "", "filter by hostname")
	cmd.Flags().StringVar(&platform, "platform", "", "filter by platform (windows, linux, macos)")
	cmd.Flags().BoolVar(&isolated, "isolated", false, "filter by isolation state")
	cmd.Flags().IntVar(&page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	return cmd
}

func newEndpointsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <endpoint-id>",
		Short: "Show one endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Endpoints().Get(context.Background(), args[0]))
		},
	}
}

func newEndpointsSoftwareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "software <endpoint-id>",
		Short: "List an endpoint's installed software",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Endpoints().ListSoftware(context.Background(), args[0]))
		},
	}
}
