package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// VulnerabilitiesClient implements vigil.VulnerabilitiesClient.
type VulnerabilitiesClient struct {
	httpClient *http.Client
}

// NewVulnerabilitiesClient creates a new vulnerabilities client.
func NewVulnerabilitiesClient(httpClient *http.Client) *VulnerabilitiesClient {
	return &VulnerabilitiesClient{httpClient: httpClient}
}

// List implements vigil.VulnerabilitiesClient.List.
func (c *VulnerabilitiesClient) List(ctx context.Context, params *vigil.VulnerabilityListParams) *vigil.Result {
	return c.httpClient.Post(ctx, "/v1/vulnerabilities/search", params.ToBody(), vigil.PaginationFromJSONHeader)
}

// ListAll implements vigil.VulnerabilitiesClient.ListAll.
func (c *VulnerabilitiesClient) ListAll(ctx context.Context, params *vigil.VulnerabilityListParams) *vigil.Result {
	return vigil.FetchAllPages(ctx, func(ctx context.Context, body map[string]any) *vigil.Result {
		return c.httpClient.Post(ctx, "/v1/vulnerabilities/search", body, vigil.PaginationFromJSONHeader)
	}, params.ToBody())
}

// Get implements vigil.VulnerabilitiesClient.Get.
func (c *VulnerabilitiesClient) Get(ctx context.Context, vulnerabilityID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/vulnerabilities/"+vulnerabilityID, nil)
}
