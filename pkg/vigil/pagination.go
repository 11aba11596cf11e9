package vigil

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Response headers carrying pagination metadata. The platform uses two
// incompatible encodings depending on endpoint: four separate numeric
// headers, or a single header holding a JSON object.
const (
	HeaderTotalItems = "X-Total-Items"
	HeaderTotalPages = "X-Total-Pages"
	HeaderFirstItem  = "X-First-Item"
	HeaderLastItem   = "X-Last-Item"
	HeaderPagination = "X-Pagination"
)

// defaultPageSize is assumed by the JSON header form when itemsPerPage is
// absent.
const defaultPageSize = 25

// PaginationExtractor normalizes one wire encoding of pagination metadata
// into the shared Pagination shape. Extractors are pure functions over
// response headers; a nil return means the response carries no usable
// pagination and is deliberately not an error.
type PaginationExtractor func(headers http.Header) *Pagination

// PaginationFromCountHeaders parses the four-header form. Page size is
// derived from the first/last item indexes (1-based, inclusive) and the
// current page from the first index. Returns nil unless both total
// headers are present and numeric.
//
// When the first/last item headers are absent both default to 1, which
// derives page 2 (pageSize 1, 1/1+1). That is a known anomaly of the
// wire format kept for compatibility, not a contract.
func PaginationFromCountHeaders(headers http.Header) *Pagination {
	totalItems, ok := headerInt(headers, HeaderTotalItems)
	if !ok {
		return nil
	}

	totalPages, ok := headerInt(headers, HeaderTotalPages)
	if !ok {
		return nil
	}

	firstItem, ok := headerInt(headers, HeaderFirstItem)
	if !ok {
		firstItem = 1
	}

	lastItem, ok := headerInt(headers, HeaderLastItem)
	if !ok {
		lastItem = 1
	}

	pageSize := lastItem - firstItem + 1
	if pageSize < 1 {
		pageSize = 1
	}

	page := firstItem/pageSize + 1

	return newPagination(page, pageSize, totalItems, totalPages)
}

// PaginationFromJSONHeader parses the single-header JSON form. Returns
// nil if the header is missing, the JSON does not parse, or either total
// is absent or non-numeric. Current page defaults to 1 and page size to
// 25 when omitted.
func PaginationFromJSONHeader(headers http.Header) *Pagination {
	raw := headers.Get(HeaderPagination)
	if raw == "" {
		return nil
	}

	var blob struct {
		CurrentPage  *int `json:"currentPage"`
		ItemsPerPage *int `json:"itemsPerPage"`
		TotalItems   *int `json:"totalItems"`
		TotalPages   *int `json:"totalPages"`
	}

	err := json.Unmarshal([]byte(raw), &blob)
	if err != nil {
		return nil
	}

	if blob.TotalItems == nil || blob.TotalPages == nil {
		return nil
	}

	page := 1
	if blob.CurrentPage != nil {
		page = *blob.CurrentPage
	}

	pageSize := defaultPageSize
	if blob.ItemsPerPage != nil {
		pageSize = *blob.ItemsPerPage
	}

	return newPagination(page, pageSize, *blob.TotalItems, *blob.TotalPages)
}

// headerInt reads a header as an integer. The second return is false when
// the header is absent or not numeric.
func headerInt(headers http.Header, name string) (int, bool) {
	raw := headers.Get(name)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return value, true
}
