// Package client implements the vigil.Client interface and the
// per-resource clients behind it. Each resource client is a static
// translation of a small parameter set onto one fixed endpoint path; all
// transport concerns live one level down in internal/http.
package client

import (
	"github.com/arclight-io/vigil-client/internal/http"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// Client implements the vigil.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     vigil.Logger

	alerts          vigil.AlertsClient
	cases           vigil.CasesClient
	endpoints       vigil.EndpointsClient
	threats         vigil.ThreatsClient
	vulnerabilities vigil.VulnerabilitiesClient
	tenants         vigil.TenantsClient
	platform        vigil.PlatformClient
}

// New creates a Vigil API client from validated configuration. Callers
// should construct through vigilclient.New, which performs validation.
func New(config *vigil.Config) *Client {
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *vigil.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.OrganizationID != "" {
		httpOpts = append(httpOpts, http.WithOrganization(config.OrganizationID))
	}

	httpOpts = append(httpOpts, http.WithRetryConfig(config.ResolveMaxRetries(), 0))

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.alerts = NewAlertsClient(c.httpClient)
	c.cases = NewCasesClient(c.httpClient)
	c.endpoints = NewEndpointsClient(c.httpClient)
	c.threats = NewThreatsClient(c.httpClient)
	c.vulnerabilities = NewVulnerabilitiesClient(c.httpClient)
	c.tenants = NewTenantsClient(c.httpClient)
	c.platform = NewPlatformClient(c.httpClient)
}

// Alerts implements vigil.Client.Alerts.
func (c *Client) Alerts() vigil.AlertsClient {
	return c.alerts
}

// Cases implements vigil.Client.Cases.
func (c *Client) Cases() vigil.CasesClient {
	return c.cases
}

// Endpoints implements vigil.Client.Endpoints.
func (c *Client) Endpoints() vigil.EndpointsClient {
	return c.endpoints
}

// Threats implements vigil.Client.Threats.
func (c *Client) Threats() vigil.ThreatsClient {
	return c.threats
}

// Vulnerabilities implements vigil.Client.Vulnerabilities.
func (c *Client) Vulnerabilities() vigil.VulnerabilitiesClient {
	return c.vulnerabilities
}

// Tenants implements vigil.Client.Tenants.
func (c *Client) Tenants() vigil.TenantsClient {
	return c.tenants
}

// Platform implements vigil.Client.Platform.
func (c *Client) Platform() vigil.PlatformClient {
	return c.platform
}

// loggerAdapter adapts vigil.Logger to http.Logger.
type loggerAdapter struct {
	logger vigil.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
