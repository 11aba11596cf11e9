package client

import (
	"context"

	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// AlertsClient implements vigil.AlertsClient.
type AlertsClient struct {
	httpClient *http.Client
}

// NewAlertsClient creates a new alerts client.
func NewAlertsClient(httpClient *http.Client) *AlertsClient {
	return &AlertsClient{httpClient: httpClient}
}

// List implements vigil.AlertsClient.List.
func (c *AlertsClient) List(ctx context.Context, params *vigil.AlertListParams) *vigil.Result {
	return c.httpClient.Post(ctx, "/v1/alerts/search", params.ToBody(), vigil.PaginationFromJSONHeader)
}

// ListAll implements vigil.AlertsClient.ListAll by merging every page of
// the search into one envelope.
func (c *AlertsClient) ListAll(ctx context.Context, params *vigil.AlertListParams) *vigil.Result {
	return vigil.FetchAllPages(ctx, func(ctx context.Context, body map[string]any) *vigil.Result {
		return c.httpClient.Post(ctx, "/v1/alerts/search", body, vigil.PaginationFromJSONHeader)
	}, params.ToBody())
}

// Get implements vigil.AlertsClient.Get.
func (c *AlertsClient) Get(ctx context.Context, alertID string) *vigil.Result {
	return c.httpClient.Get(ctx, "/v1/alerts/"+alertID, nil)
}
