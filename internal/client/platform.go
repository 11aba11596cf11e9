package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// PlatformClient implements vigil.PlatformClient.
type PlatformClient struct {
	httpClient *http.Client
}

// NewPlatformClient creates a new platform status client.
func NewPlatformClient(httpClient *http.Client) *PlatformClient {
	return &PlatformClient{httpClient: httpClient}
}

// Health implements vigil.PlatformClient.Health.
func (c *PlatformClient) Health(ctx context.Context) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/platform/health", nil)
}

// Usage implements vigil.PlatformClient.Usage.
func (c *PlatformClient) Usage(ctx context.Context) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/platform/usage", nil)
}
