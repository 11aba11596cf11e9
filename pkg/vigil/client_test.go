package vigil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// Not parallel: subtests mutate VIGIL_MAX_RETRIES via t.Setenv.
func TestResolveMaxRetries(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	t.Run("explicit value wins over environment", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "9")

		config := &vigil.Config{MaxRetries: intPtr(3)}
		assert.Equal(t, 3, config.ResolveMaxRetries())
	})

	t.Run("explicit zero disables retrying", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "9")

		config := &vigil.Config{MaxRetries: intPtr(0)}
		assert.Equal(t, 0, config.ResolveMaxRetries())
	})

	t.Run("environment override applies when unset", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "4")

		config := &vigil.Config{}
		assert.Equal(t, 4, config.ResolveMaxRetries())
	})

	t.Run("invalid environment value falls back to default", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "plenty")

		config := &vigil.Config{}
		assert.Equal(t, vigil.DefaultMaxRetries, config.ResolveMaxRetries())
	})

	t.Run("negative environment value falls back to default", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "-2")

		config := &vigil.Config{}
		assert.Equal(t, vigil.DefaultMaxRetries, config.ResolveMaxRetries())
	})

	t.Run("default applies when nothing is set", func(t *testing.T) {
		t.Setenv("VIGIL_MAX_RETRIES", "")

		config := &vigil.Config{}
		assert.Equal(t, vigil.DefaultMaxRetries, config.ResolveMaxRetries())
	})
}

func TestParamsToBody(t *testing.T) {
	t.Parallel()

	t.Run("nil params yield empty body", func(t *testing.T) {
		t.Parallel()

		var params *vigil.AlertListParams

		assert.Empty(t, params.ToBody())
	})

	t.Run("zero paging fields omitted", func(t *testing.T) {
		t.Parallel()

		params := &vigil.AlertListParams{Severity: "high"}
		body := params.ToBody()
		assert.Equal(t, map[string]any{"severity": "high"}, body)
	})

	t.Run("paging fields included when set", func(t *testing.T) {
		t.Parallel()

		params := &vigil.CaseListParams{
			ListParams: vigil.ListParams{Page: 2, PageSize: 50},
			Status:     "open",
		}
		body := params.ToBody()
		assert.Equal(t, map[string]any{"page": 2, "pageSize": 50, "status": "open"}, body)
	})
}
