package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewPlatformCommand creates the platform command group
func NewPlatformCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Platform status",
		Long:  "Inspect platform health and usage",
	}

	cmd.AddCommand(newPlatformHealthCommand())
	cmd.AddCommand(newPlatformUsageCommand())

	return cmd
}

func newPlatformHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show platform health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Platform().Health(context.Background()))
		},
	}
}

func newPlatformUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show platform usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			return renderResult(client.Platform().Usage(context.Background()))
		},
	}
}
