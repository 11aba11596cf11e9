package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arclight-io/vigil-client/internal/constants"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// ErrUnknownConfigKey is returned when set/unset names a key the config
// file does not carry.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// Config is the persisted CLI configuration at ~/.vigil/config.yml.
type Config struct {
	API          string `yaml:"api,omitempty"`
	APIKey       string `yaml:"api_key,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	Output       string `yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted Vigil CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			// The key never leaves the config file in the clear.
			display := *config
			if display.APIKey != "" {
				display.APIKey = vigil.MaskSecret(display.APIKey)
			}

			return renderValue(map[string]string{
				"api":          display.API,
				"api_key":      display.APIKey,
				"organization": display.Organization,
				"output":       display.Output,
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func applyConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "api_key":
		config.APIKey = value
	case "organization":
		config.Organization = value
	case "output":
		config.Output = value
	default:
		return fmt.Errorf("'%s': %w", key, ErrUnknownConfigKey)
	}

	return nil
}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".vigil", "config.yml"), nil
}

func loadConfig() *Config {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return config
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return config
	}

	_ = yaml.Unmarshal(raw, config)

	return config
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	raw, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	if err := os.WriteFile(path, raw, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}
