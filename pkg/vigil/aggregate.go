package vigil

import "context"

// MaxAutoPages is the hard upper bound on pages fetched by FetchAllPages.
const MaxAutoPages = 10

// PageFetcher is the single-page capability driven by FetchAllPages: it
// fetches exactly one page of one logical operation for the given
// parameter set. The aggregator has no knowledge of which endpoint a
// fetcher calls; the "page" parameter is owned by the aggregator.
type PageFetcher func(ctx context.Context, params map[string]any) *Result

// FetchAllPages repeatedly drives fetch to assemble a bounded multi-page
// result, hiding pagination from the caller.
//
// The first fetch always uses page 1, regardless of any page the caller
// supplied. A first page that failed, carries non-sequence data, or
// reports no further pages is returned unchanged. Otherwise pages are
// followed through NextPage until the result set is exhausted or
// MaxAutoPages is reached. A failure on a later page degrades to a
// partial result: everything accumulated so far is returned as success.
//
// The merged envelope reports page 1 with a page size equal to the total
// accumulated item count; HasMore is set only when the bound cut the loop
// short while pages remained.
func FetchAllPages(ctx context.Context, fetch PageFetcher, params map[string]any) *Result {
	pageParams := make(map[string]any, len(params)+1)
	for key, value := range params {
		pageParams[key] = value
	}

	pageParams["page"] = 1

	first := fetch(ctx, pageParams)
	if first == nil || !first.Success {
		return first
	}

	items, ok := first.Data.([]any)
	if !ok {
		return first
	}

	pagination := first.Pagination
	if pagination == nil || !pagination.HasMore {
		return first
	}

	merged := make([]any, len(items))
	copy(merged, items)

	more := true
	pages := 1

	for more && pages < MaxAutoPages {
		nextPage := pagination.Page + 1
		if pagination.NextPage != nil {
			nextPage = *pagination.NextPage
		}

		pageParams["page"] = nextPage

		page := fetch(ctx, pageParams)
		if page == nil || !page.Success {
			// Later-page failure: keep what we have.
			more = false

			break
		}

		pageItems, ok := page.Data.([]any)
		if !ok {
			more = false

			break
		}

		merged = append(merged, pageItems...)
		pages++

		if page.Pagination == nil {
			more = false
		} else {
			pagination = page.Pagination
			more = pagination.HasMore
		}
	}

	return NewSuccessWithPagination(merged, mergedPagination(pagination, len(merged), more))
}

// mergedPagination describes the merged view rather than any underlying
// page: always page 1, sized to the full accumulation.
func mergedPagination(last *Pagination, totalAccumulated int, hasMore bool) *Pagination {
	merged := &Pagination{
		Page:       1,
		PageSize:   totalAccumulated,
		TotalItems: last.TotalItems,
		TotalPages: last.TotalPages,
		HasMore:    hasMore,
	}

	if hasMore {
		next := 2
		merged.NextPage = &next
	}

	return merged
}
