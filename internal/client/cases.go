package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// CasesClient implements vigil.CasesClient.
type CasesClient struct {
	httpClient *http.Client
}

// NewCasesClient creates a new cases client.
func NewCasesClient(httpClient *http.Client) *CasesClient {
	return &CasesClient{httpClient: httpClient}
}

// List implements vigil.CasesClient.List.
func (c *CasesClient) List(ctx context.Context, params *vigil.CaseListParams) *vigil.Result {
	return c.httpClient.Post(ctx, "/v1/cases/search", params.ToBody(), vigil.PaginationFromJSONHeader)
}

// ListAll implements vigil.CasesClient.ListAll.
func (c *CasesClient) ListAll(ctx context.Context, params *vigil.CaseListParams) *vigil.Result {
	return vigil.FetchAllPages(ctx, func(ctx context.Context, body map[string]any) *vigil.Result {
		return c.httpClient.Post(ctx, "/v1/cases/search", body, vigil.PaginationFromJSONHeader)
	}, params.ToBody())
}

// Get implements vigil.CasesClient.Get.
func (c *CasesClient) Get(ctx context.Context, caseID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/cases/"+caseID, nil)
}

// ListComments implements vigil.CasesClient.ListComments.
func (c *CasesClient) ListComments(ctx context.Context, caseID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/cases/"+caseID+"/comments", nil)
}
