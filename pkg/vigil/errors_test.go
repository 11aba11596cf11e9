package vigil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

func TestKindForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   vigil.ErrorKind
	}{
		{name: "bad request", status: 400, want: vigil.ErrorKindBadRequest},
		{name: "unauthorized", status: 401, want: vigil.ErrorKindUnauthorized},
		{name: "forbidden", status: 403, want: vigil.ErrorKindForbidden},
		{name: "not found", status: 404, want: vigil.ErrorKindNotFound},
		{name: "internal server error", status: 500, want: vigil.ErrorKindServerError},
		{name: "bad gateway", status: 502, want: vigil.ErrorKindServerError},
		{name: "teapot falls to server error", status: 418, want: vigil.ErrorKindServerError},
		{name: "rate limited falls to server error", status: 429, want: vigil.ErrorKindServerError},
		{name: "mapping is total for odd codes", status: 999, want: vigil.ErrorKindServerError},
		{name: "mapping is total for zero", status: 0, want: vigil.ErrorKindServerError},
		{name: "mapping is total for negatives", status: -1, want: vigil.ErrorKindServerError},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, vigil.KindForStatus(testCase.status))
		})
	}
}

func TestResultErr(t *testing.T) {
	t.Parallel()

	t.Run("success yields nil", func(t *testing.T) {
		t.Parallel()

		res := vigil.NewSuccess(map[string]any{"id": "a-1"})
		require.NoError(t, res.Err())
	})

	t.Run("http failure carries status", func(t *testing.T) {
		t.Parallel()

		res := vigil.NewHTTPFailure(404, "Not Found")
		err := res.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NOT_FOUND")
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("network failure has no status", func(t *testing.T) {
		t.Parallel()

		res := vigil.NewFailure(vigil.ErrorKindNetworkError, "connection refused")
		err := res.Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NETWORK_ERROR")
		assert.NotContains(t, err.Error(), "status")
	})
}

func TestFailurePredicates(t *testing.T) {
	t.Parallel()

	notFound := vigil.NewHTTPFailure(404, "Not Found")
	unauthorized := vigil.NewHTTPFailure(401, "Unauthorized")
	forbidden := vigil.NewHTTPFailure(403, "Forbidden")
	network := vigil.NewFailure(vigil.ErrorKindNetworkError, "dial tcp: connection refused")
	success := vigil.NewSuccess(nil)

	assert.True(t, vigil.IsNotFound(notFound))
	assert.False(t, vigil.IsNotFound(unauthorized))
	assert.False(t, vigil.IsNotFound(success))
	assert.False(t, vigil.IsNotFound(nil))

	assert.True(t, vigil.IsUnauthorized(unauthorized))
	assert.False(t, vigil.IsUnauthorized(forbidden))

	assert.True(t, vigil.IsForbidden(forbidden))
	assert.False(t, vigil.IsForbidden(notFound))

	assert.True(t, vigil.IsNetworkError(network))
	assert.False(t, vigil.IsNetworkError(notFound))
}

func TestEnvelopeShape(t *testing.T) {
	t.Parallel()

	t.Run("failure never carries pagination", func(t *testing.T) {
		t.Parallel()

		res := vigil.NewHTTPFailure(500, "Internal Server Error")
		assert.False(t, res.Success)
		assert.Nil(t, res.Pagination)
		assert.Nil(t, res.Data)
		require.NotNil(t, res.Error)
		assert.Equal(t, 500, res.Error.StatusCode)
	})

	t.Run("success carries no error", func(t *testing.T) {
		t.Parallel()

		res := vigil.NewSuccessWithPagination([]any{"a"}, &vigil.Pagination{Page: 1, PageSize: 1})
		assert.True(t, res.Success)
		assert.Nil(t, res.Error)
		require.NotNil(t, res.Pagination)
	})
}
