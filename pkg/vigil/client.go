package vigil

import (
	"context"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// DefaultMaxRetries applies when neither the config nor the environment
// specifies a retry limit.
const DefaultMaxRetries = 1

// Client provides access to the Vigil platform's resource clients. Use
// vigilclient.New to construct one.
type Client interface {
	Alerts() AlertsClient
	Cases() CasesClient
	Endpoints() EndpointsClient
	Threats() ThreatsClient
	Vulnerabilities() VulnerabilitiesClient
	Tenants() TenantsClient
	Platform() PlatformClient
}

// AlertsClient provides access to alert read operations.
type AlertsClient interface {
	List(ctx context.Context, params *AlertListParams) *Result
	ListAll(ctx context.Context, params *AlertListParams) *Result
	Get(ctx context.Context, alertID string) *Result
}

// CasesClient provides access to case read operations.
type CasesClient interface {
	List(ctx context.Context, params *CaseListParams) *Result
	ListAll(ctx context.Context, params *CaseListParams) *Result
	Get(ctx context.Context, caseID string) *Result
	ListComments(ctx context.Context, caseID string) *Result
}

// EndpointsClient provides access to managed endpoint (device) read
// operations.
type EndpointsClient interface {
	List(ctx context.Context, params *EndpointListParams) *Result
	ListAll(ctx context.Context, params *EndpointListParams) *Result
	Get(ctx context.Context, endpointID string) *Result
	ListSoftware(ctx context.Context, endpointID string) *Result
}

// ThreatsClient provides access to threat read operations.
type ThreatsClient interface {
	List(ctx context.Context, params *ThreatListParams) *Result
	ListAll(ctx context.Context, params *ThreatListParams) *Result
	Get(ctx context.Context, threatID string) *Result
}

// VulnerabilitiesClient provides access to vulnerability read operations.
type VulnerabilitiesClient interface {
	List(ctx context.Context, params *VulnerabilityListParams) *Result
	ListAll(ctx context.Context, params *VulnerabilityListParams) *Result
	Get(ctx context.Context, vulnerabilityID string) *Result
}

// TenantsClient provides access to tenant read operations.
type TenantsClient interface {
	List(ctx context.Context) *Result
	Get(ctx context.Context, tenantID string) *Result
}

// PlatformClient provides access to platform status endpoints.
type PlatformClient interface {
	Health(ctx context.Context) *Result
	Usage(ctx context.Context) *Result
}

// Logger is the structured logging interface consumed by the client. The
// transport applies the redactor to payload fields before handing them to
// a Logger, so implementations never see raw credentials.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// Config represents client configuration for building a vigil.Client.
// It is constructed once per caller identity and is immutable for its
// lifetime; a Config in use is safe for concurrent top-level calls.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the platform API base URL. It must start with
	// "https://"; a trailing slash is trimmed during construction.
	BaseURL string

	// OrganizationID optionally narrows requests to one sub-organization
	// of a multi-tenant account via the scoping headers.
	OrganizationID string

	// MaxRetries bounds re-attempts of retryable failures. Explicit
	// values (including 0, which disables retrying) take precedence over
	// the VIGIL_MAX_RETRIES environment variable; when neither is set, or
	// the environment value is not a non-negative integer, the default
	// of 1 applies.
	MaxRetries *int

	// Logger receives request/response diagnostics. Nil disables logging.
	Logger Logger

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// envSettings is the environment override surface consumed by the core.
type envSettings struct {
	MaxRetries string `envconfig:"MAX_RETRIES"`
}

// ResolveMaxRetries applies the documented precedence: explicit config
// value, then VIGIL_MAX_RETRIES, then DefaultMaxRetries.
func (c *Config) ResolveMaxRetries() int {
	if c.MaxRetries != nil && *c.MaxRetries >= 0 {
		return *c.MaxRetries
	}

	var env envSettings
	if err := envconfig.Process("vigil", &env); err == nil && env.MaxRetries != "" {
		value, err := strconv.Atoi(env.MaxRetries)
		if err == nil && value >= 0 {
			return value
		}
	}

	return DefaultMaxRetries
}
