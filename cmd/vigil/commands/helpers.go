package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arclight-io/vigil-client/pkg/vigil"
	"github.com/arclight-io/vigil-client/pkg/vigilclient"
)

// ErrAPINotConfigured is returned when neither flags, environment, nor
// the config file supply an endpoint and key.
var ErrAPINotConfigured = errors.New("no API configured: run 'vigil login' or pass --api and --key")

// effectiveSettings merges flags and environment (via viper) over the
// persisted config file. Flags win.
func effectiveSettings() (api, key, org string) {
	config := loadConfig()

	api = viper.GetString("api")
	if api == "" {
		api = config.API
	}

	key = viper.GetString("key")
	if key == "" {
		key = config.APIKey
	}

	org = viper.GetString("organization")
	if org == "" {
		org = config.Organization
	}

	return api, key, org
}

// createClient builds an API client from the effective settings.
func createClient() (vigil.Client, error) {
	api, key, org := effectiveSettings()
	if api == "" || key == "" {
		return nil, ErrAPINotConfigured
	}

	level := vigil.LogLevelError
	if viper.GetBool("verbose") {
		level = vigil.LogLevelInfo
	}

	if viper.GetBool("debug") {
		level = vigil.LogLevelDebug
	}

	return vigilclient.New(&vigil.Config{
		APIKey:         key,
		BaseURL:        api,
		OrganizationID: org,
		Logger:         vigil.NewLogger(level),
		Debug:          viper.GetBool("debug"),
	})
}

// renderValue writes a plain value in the selected output format.
func renderValue(value any) error {
	output := viper.GetString("output")
	switch output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(value)
	default:
		return renderTable(value)
	}
}

// renderResult unwraps an envelope: failures become command errors,
// successful data renders in the selected format with a pagination
// footer for table output.
func renderResult(res *vigil.Result) error {
	if err := res.Err(); err != nil {
		return err
	}

	output := viper.GetString("output")
	switch output {
	case "json", "yaml":
		return renderValue(res)
	default:
		if err := renderTable(res.Data); err != nil {
			return err
		}

		if res.Pagination != nil {
			fmt.Printf("\nPage %d of %d (%d items total)\n",
				res.Pagination.Page, res.Pagination.TotalPages, res.Pagination.TotalItems)
		}

		return nil
	}
}

func renderTable(value any) error {
	switch typed := value.(type) {
	case []any:
		return renderListTable(typed)
	case map[string]any:
		return renderDetailTable(typed)
	case map[string]string:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		for _, key := range sortedStringKeys(typed) {
			_ = table.Append(key, typed[key])
		}

		return table.Render()
	case nil:
		fmt.Println("(no data)")

		return nil
	default:
		fmt.Println(formatCell(typed))

		return nil
	}
}

// renderListTable prints a sequence of objects as rows, with columns
// taken from the union of keys across all rows.
func renderListTable(items []any) error {
	if len(items) == 0 {
		fmt.Println("No results")

		return nil
	}

	columns := collectColumns(items)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(columns)

	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			_ = table.Append(formatCell(item))

			continue
		}

		cells := make([]string, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, formatCell(row[column]))
		}

		_ = table.Append(cells)
	}

	return table.Render()
}

func renderDetailTable(item map[string]any) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	for _, key := range sortedAnyKeys(item) {
		_ = table.Append(key, formatCell(item[key]))
	}

	return table.Render()
}

// collectColumns returns the union of keys across rows, with "id" and
// "name" pinned first when present.
func collectColumns(items []any) []string {
	seen := map[string]bool{}

	var columns []string

	for _, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			continue
		}

		for key := range row {
			if !seen[key] {
				seen[key] = true

				columns = append(columns, key)
			}
		}
	}

	sort.Strings(columns)

	pinned := []string{"name", "id"}
	for _, pin := range pinned {
		for i, column := range columns {
			if column == pin {
				columns = append(columns[:i], columns[i+1:]...)
				columns = append([]string{pin}, columns...)

				break
			}
		}
	}

	return columns
}

func formatCell(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		if typed == float64(int64(typed)) {
			return fmt.Sprintf("%d", int64(typed))
		}

		return fmt.Sprintf("%g", typed)
	case bool:
		return fmt.Sprintf("%t", typed)
	default:
		raw, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(raw)
	}
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
