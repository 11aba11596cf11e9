// Package vigilclient provides the main entry point for creating Vigil
// API clients.
package vigilclient

import (
	"strings"

	"github.com/arclight-io/vigil-client/internal/client"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// New creates a new Vigil API client. Configuration is validated up
// front: a missing API key or a base URL that is not HTTPS fails
// construction immediately rather than surfacing later as a runtime
// failure. A trailing slash on the base URL is trimmed.
func New(config *vigil.Config) (vigil.Client, error) {
	if config == nil {
		return nil, vigil.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, vigil.ErrAPIKeyRequired
	}

	if config.BaseURL == "" {
		return nil, vigil.ErrBaseURLRequired
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, vigil.ErrBaseURLNotHTTPS
	}

	if config.MaxRetries != nil && *config.MaxRetries < 0 {
		return nil, vigil.ErrNegativeRetryMax
	}

	// Copy so the caller's Config stays untouched.
	normalized := *config
	normalized.BaseURL = baseURL

	return client.New(&normalized), nil
}

// NewWithAPIKey creates a client with just an API key and base URL.
func NewWithAPIKey(apiKey, baseURL string) (vigil.Client, error) {
	return New(&vigil.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
