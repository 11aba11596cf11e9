package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Vigil CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderValue(map[string]string{
				"version": version,
				"commit":  commit,
				"built":   date,
			})
		},
	}
}
