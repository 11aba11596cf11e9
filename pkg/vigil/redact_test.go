package vigil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{name: "short secret fully masked", secret: "hunter2", want: "****"},
		{name: "eight chars fully masked", secret: "12345678", want: "****"},
		{name: "nine chars keeps edges", secret: "123456789", want: "1234*6789"},
		{name: "long secret keeps edges", secret: "sk-abcdefghijklmnop", want: "sk-a***********mnop"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, vigil.MaskSecret(testCase.secret))
		})
	}
}

func TestRedact(t *testing.T) {
	t.Parallel()

	const secret = "sk-abcdefghijklmnop"

	t.Run("string occurrence masked", func(t *testing.T) {
		t.Parallel()

		got := vigil.Redact("key="+secret+" used", secret)
		assert.Equal(t, "key=sk-a***********mnop used", got)
	})

	t.Run("short secret occurrences become stars", func(t *testing.T) {
		t.Parallel()

		got := vigil.Redact("token abc123 leaked", "abc123")
		assert.Equal(t, "token **** leaked", got)
	})

	t.Run("maps and slices traversed", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{
			"apiKey": secret,
			"nested": map[string]any{
				"headers": map[string]string{"X-Api-Key": secret},
				"list":    []any{secret, 42, true},
				"tags":    []string{"a", secret},
			},
			"count": 3,
		}

		got, ok := vigil.Redact(value, secret).(map[string]any)
		require.True(t, ok)

		assert.Equal(t, "sk-a***********mnop", got["apiKey"])
		assert.Equal(t, 3, got["count"])

		nested, ok := got["nested"].(map[string]any)
		require.True(t, ok)

		headers, ok := nested["headers"].(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "sk-a***********mnop", headers["X-Api-Key"])

		list, ok := nested["list"].([]any)
		require.True(t, ok)
		assert.Equal(t, "sk-a***********mnop", list[0])
		assert.Equal(t, 42, list[1])

		tags, ok := nested["tags"].([]string)
		require.True(t, ok)
		assert.Equal(t, "sk-a***********mnop", tags[1])
	})

	t.Run("original value untouched", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{"apiKey": secret}
		_ = vigil.Redact(value, secret)
		assert.Equal(t, secret, value["apiKey"])
	})

	t.Run("empty secret is a no-op", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{"k": "v"}
		got := vigil.Redact(value, "")
		assert.Equal(t, value, got)
	})

	t.Run("traversal stops at depth bound", func(t *testing.T) {
		t.Parallel()

		// 15 nested levels with the secret at the bottom: must not hang
		// or panic, and the subtree past the bound stays unmodified.
		deepest := map[string]any{"apiKey": secret}

		value := any(deepest)
		for i := 0; i < 14; i++ {
			value = map[string]any{"level": value}
		}

		got := vigil.Redact(value, secret)

		current, ok := got.(map[string]any)
		require.True(t, ok)

		for i := 0; i < 14; i++ {
			next, ok := current["level"].(map[string]any)
			require.True(t, ok)
			current = next
		}

		assert.Equal(t, secret, current["apiKey"])
	})

	t.Run("secret within bound still masked in deep structure", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{
			"shallow": secret,
			"deep":    map[string]any{"deeper": map[string]any{"apiKey": secret}},
		}

		got, ok := vigil.Redact(value, secret).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "sk-a***********mnop", got["shallow"])

		deep := got["deep"].(map[string]any)["deeper"].(map[string]any)
		assert.Equal(t, "sk-a***********mnop", deep["apiKey"])
	})
}
