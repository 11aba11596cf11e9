package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/arclight-io/vigil-client/internal/constants"
)

// ErrEndpointRequired is returned when no API endpoint was supplied.
var ErrEndpointRequired = errors.New("API endpoint is required")

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint  string
		apiKey       string
		organization string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Vigil",
		Long:  "Store an API key for a Vigil endpoint after verifying it",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = loadConfig().API
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return ErrEndpointRequired
			}

			// Prompt for the key without echoing it
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			// Verify the credentials before persisting them
			viper.Set("api", apiEndpoint)
			viper.Set("key", apiKey)

			if organization != "" {
				viper.Set("organization", organization)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
			defer cancel()

			health := client.Platform().Health(ctx)
			if err := health.Err(); err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			// Save configuration
			config := loadConfig()
			config.API = apiEndpoint
			config.APIKey = apiKey

			if organization != "" {
				config.Organization = organization
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&apiKey, "key", "k", "", "API key (prompted when omitted)")
	cmd.Flags().StringVarP(&organization, "organization", "O", "", "organization ID to scope requests to")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Vigil",
		Long:  "Clear the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
