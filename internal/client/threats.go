package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// ThreatsClient implements vigil.ThreatsClient.
type ThreatsClient struct {
	httpClient *http.Client
}

// NewThreatsClient creates a new threats client.
func NewThreatsClient(httpClient *http.Client) *ThreatsClient {
	return &ThreatsClient{httpClient: httpClient}
}

// List implements vigil.ThreatsClient.List.
func (c *ThreatsClient) List(ctx context.Context, params *vigil.ThreatListParams) *vigil.Result {
	return c.httpClient.Post(ctx, "/v1/threats/search", params.ToBody(), vigil.PaginationFromCountHeaders)
}

// ListAll implements vigil.ThreatsClient.ListAll.
func (c *ThreatsClient) ListAll(ctx context.Context, params *vigil.ThreatListParams) *vigil.Result {
	return vigil.FetchAllPages(ctx, func(ctx context.Context, body map[string]any) *vigil.Result {
		return c.httpClient.Post(ctx, "/v1/threats/search", body, vigil.PaginationFromCountHeaders)
	}, params.ToBody())
}

// Get implements vigil.ThreatsClient.Get.
func (c *ThreatsClient) Get(ctx context.Context, threatID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/threats/"+threatID, nil)
}
