package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// EndpointsClient implements vigil.EndpointsClient.
//
// Endpoint search reports pagination through the four-header count form
// rather than the JSON header the newer search endpoints use.
type EndpointsClient struct {
	httpClient *http.Client
}

// NewEndpointsClient creates a new endpoints client.
func NewEndpointsClient(httpClient *http.Client) *EndpointsClient {
	return &EndpointsClient{httpClient: httpClient}
}

// List implements vigil.EndpointsClient.List.
func (c *EndpointsClient) List(ctx context.Context, params *vigil.EndpointListParams) *vigil.Result {
	return c.httpClient.Post(ctx, "/v1/endpoints/search", params.ToBody(), vigil.PaginationFromCountHeaders)
}

// ListAll implements vigil.EndpointsClient.ListAll.
func (c *EndpointsClient) ListAll(ctx context.Context, params *vigil.EndpointListParams) *vigil.Result {
	return vigil.FetchAllPages(ctx, func(ctx context.Context, body map[string]any) *vigil.Result {
		return c.httpClient.Post(ctx, "/v1/endpoints/search", body, vigil.PaginationFromCountHeaders)
	}, params.ToBody())
}

// Get implements vigil.EndpointsClient.Get.
func (c *EndpointsClient) Get(ctx context.Context, endpointID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/endpoints/"+endpointID, nil)
}

// ListSoftware implements vigil.EndpointsClient.ListSoftware.
func (c *EndpointsClient) ListSoftware(ctx context.Context, endpointID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/endpoints/"+endpointID+"/software", nil)
}
