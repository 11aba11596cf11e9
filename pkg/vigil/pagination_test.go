package vigil_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclight-io/vigil-client/pkg/vigil"
)

func countHeaders(totalItems, totalPages, firstItem, lastItem string) http.Header {
	headers := http.Header{}
	if totalItems != "" {
		headers.Set(vigil.HeaderTotalItems, totalItems)
	}

	if totalPages != "" {
		headers.Set(vigil.HeaderTotalPages, totalPages)
	}

	if firstItem != "" {
		headers.Set(vigil.HeaderFirstItem, firstItem)
	}

	if lastItem != "" {
		headers.Set(vigil.HeaderLastItem, lastItem)
	}

	return headers
}

func TestPaginationFromCountHeaders(t *testing.T) {
	t.Parallel()

	t.Run("middle page", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromCountHeaders(countHeaders("100", "4", "26", "50"))
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 25, got.PageSize)
		assert.Equal(t, 100, got.TotalItems)
		assert.Equal(t, 4, got.TotalPages)
		assert.True(t, got.HasMore)
		require.NotNil(t, got.NextPage)
		assert.Equal(t, 3, *got.NextPage)
	})

	t.Run("first page", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromCountHeaders(countHeaders("100", "4", "1", "25"))
		require.NotNil(t, got)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 25, got.PageSize)
		assert.True(t, got.HasMore)
	})

	t.Run("last page reports no more", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromCountHeaders(countHeaders("100", "4", "76", "100"))
		require.NotNil(t, got)
		assert.Equal(t, 4, got.Page)
		assert.False(t, got.HasMore)
		assert.Nil(t, got.NextPage)
	})

	t.Run("missing total pages yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromCountHeaders(countHeaders("100", "", "1", "25")))
	})

	t.Run("missing total items yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromCountHeaders(countHeaders("", "4", "1", "25")))
	})

	t.Run("non-numeric total yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromCountHeaders(countHeaders("many", "4", "1", "25")))
	})

	t.Run("empty headers yield nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromCountHeaders(http.Header{}))
	})

	t.Run("defaulted item indexes derive page two", func(t *testing.T) {
		t.Parallel()

		// With both item headers absent, first and last default to 1 and
		// the derived page is 2. Kept for wire compatibility.
		got := vigil.PaginationFromCountHeaders(countHeaders("100", "4", "", ""))
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Page)
		assert.Equal(t, 1, got.PageSize)
	})
}

func jsonHeader(value string) http.Header {
	headers := http.Header{}
	headers.Set(vigil.HeaderPagination, value)

	return headers
}

func TestPaginationFromJSONHeader(t *testing.T) {
	t.Parallel()

	t.Run("full blob", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromJSONHeader(jsonHeader(`{"totalItems":21,"totalPages":11,"currentPage":1,"itemsPerPage":2}`))
		require.NotNil(t, got)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 2, got.PageSize)
		assert.Equal(t, 21, got.TotalItems)
		assert.Equal(t, 11, got.TotalPages)
		assert.True(t, got.HasMore)
		require.NotNil(t, got.NextPage)
		assert.Equal(t, 2, *got.NextPage)
	})

	t.Run("defaults applied for page and size", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromJSONHeader(jsonHeader(`{"totalItems":50,"totalPages":2}`))
		require.NotNil(t, got)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, 25, got.PageSize)
		assert.True(t, got.HasMore)
	})

	t.Run("final page", func(t *testing.T) {
		t.Parallel()

		got := vigil.PaginationFromJSONHeader(jsonHeader(`{"totalItems":50,"totalPages":2,"currentPage":2,"itemsPerPage":25}`))
		require.NotNil(t, got)
		assert.False(t, got.HasMore)
		assert.Nil(t, got.NextPage)
	})

	t.Run("missing header yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromJSONHeader(http.Header{}))
	})

	t.Run("malformed JSON yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromJSONHeader(jsonHeader(`{"totalItems":`)))
	})

	t.Run("missing totals yield nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromJSONHeader(jsonHeader(`{"currentPage":1,"itemsPerPage":25}`)))
	})

	t.Run("non-numeric totals yield nothing", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, vigil.PaginationFromJSONHeader(jsonHeader(`{"totalItems":"many","totalPages":2}`)))
	})
}
