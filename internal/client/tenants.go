package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// TenantsClient implements vigil.TenantsClient.
type TenantsClient struct {
	httpClient *http.Client
}

// NewTenantsClient creates a new tenants client.
func NewTenantsClient(httpClient *http.Client) *TenantsClient {
	return &TenantsClient{httpClient: httpClient}
}

// List implements vigil.TenantsClient.List.
func (c *TenantsClient) List(ctx context.Context) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/tenants", nil)
}

// Get implements vigil.TenantsClient.Get.
func (c *TenantsClient) Get(ctx context.Context, tenantID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/tenants/"+tenantID, nil)
}
