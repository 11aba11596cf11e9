// Package http implements the retrying transport used by all Vigil
// resource clients. It owns authentication headers, failure
// classification, exponential backoff, and the translation of every
// outcome into a vigil.Result envelope.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/arclight-io/vigil-client/internal/constants"
	"github.com/arclight-io/vigil-client/pkg/vigil"
)

// Request headers owned by the transport.
const (
	HeaderAPIKey       = "X-Api-Key"
	HeaderOrganization = "X-Organization-Id"
	HeaderTenant       = "X-Tenant-Id"
)

const defaultUserAgent = "vigil-client/1.0"

// Logger is the structured logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents one logical API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string

	// Pagination, when set, extracts normalized pagination metadata
	// from the response headers of a successful POST.
	Pagination vigil.PaginationExtractor
}

// Client issues requests against the Vigil API with bounded retries.
// It is safe for concurrent use; all per-call state is local.
type Client struct {
	baseURL     string
	apiKey      string
	orgID       string
	userAgent   string
	logger      Logger
	debug       bool
	maxRetries  int
	backoffBase time.Duration
	inner       *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for request/response diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables verbose request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithOrganization scopes every request to the given organization via
// the scoping headers.
func WithOrganization(orgID string) Option {
	return func(c *Client) {
		c.orgID = orgID
	}
}

// WithRetryConfig sets the retry bound and the base backoff delay. A
// maxRetries of 0 disables retrying entirely.
func WithRetryConfig(maxRetries int, backoffBase time.Duration) Option {
	return func(c *Client) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}

		if backoffBase > 0 {
			c.backoffBase = backoffBase
		}
	}
}

// NewClient creates a transport for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		userAgent:   defaultUserAgent,
		logger:      noopLogger{},
		maxRetries:  vigil.DefaultMaxRetries,
		backoffBase: constants.DefaultBackoffBase,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.inner = client.newRetryableClient()

	return client
}

// RetryableStatus reports whether a status code is eligible for
// automatic re-attempt: 408, 417, 429, or any 5xx.
func RetryableStatus(statusCode int) bool {
	switch statusCode {
	case nethttp.StatusRequestTimeout, nethttp.StatusExpectationFailed, nethttp.StatusTooManyRequests:
		return true
	default:
		return statusCode >= nethttp.StatusInternalServerError
	}
}

// ShouldRetry classifies one attempt's outcome. A transport error that
// produced no response is always a retry candidate; an HTTP response is
// retried only for the retryable statuses.
func ShouldRetry(resp *nethttp.Response, err error) bool {
	if err != nil || resp == nil {
		return true
	}

	return RetryableStatus(resp.StatusCode)
}

// Backoff returns the delay before re-attempting: base doubled per
// 0-based attempt, with no jitter and no cap beyond the retry bound.
func Backoff(base time.Duration, attempt int) time.Duration {
	return base << attempt
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	inner := retryablehttp.NewClient()
	inner.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	inner.RetryMax = c.maxRetries
	inner.RetryWaitMin = c.backoffBase
	inner.RetryWaitMax = Backoff(c.backoffBase, c.maxRetries)
	inner.Logger = nil

	inner.CheckRetry = func(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return ShouldRetry(resp, err), nil
	}

	inner.Backoff = func(_, _ time.Duration, attempt int, _ *nethttp.Response) time.Duration {
		return Backoff(c.backoffBase, attempt)
	}

	// Hand the final response back so Do can classify it.
	inner.ErrorHandler = retryablehttp.PassthroughErrorHandler

	inner.RequestLogHook = func(_ retryablehttp.Logger, req *nethttp.Request, attempt int) {
		c.logger.Debug("issuing request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.String(),
			"attempt": attempt,
		})
	}

	inner.ResponseLogHook = func(_ retryablehttp.Logger, resp *nethttp.Response) {
		if RetryableStatus(resp.StatusCode) {
			c.logger.Warn("retryable response", map[string]interface{}{
				"method": resp.Request.Method,
				"url":    resp.Request.URL.String(),
				"status": resp.StatusCode,
			})

			return
		}

		if c.debug {
			c.logger.Debug("HTTP Response", map[string]interface{}{
				"status": resp.StatusCode,
			})
		}
	}

	return inner
}

// Do executes one logical request, retrying retryable failures up to the
// configured bound, and returns the outcome as an envelope. Failures are
// never returned as Go errors.
func (c *Client) Do(ctx context.Context, req *Request) *vigil.Result {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var rawBody any

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return vigil.NewFailure(vigil.ErrorKindBadRequest, "encoding request body: "+err.Error())
		}

		rawBody = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint, rawBody)
	if err != nil {
		return vigil.NewFailure(vigil.ErrorKindNetworkError, err.Error())
	}

	c.setHeaders(httpReq, req.Headers)

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
			"body":   vigil.Redact(req.Body, c.apiKey),
		})
	}

	resp, err := c.inner.Do(httpReq)
	if err != nil {
		message := rootCause(err)
		c.logger.Error("request failed", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
			"error":  vigil.Redact(message, c.apiKey),
		})

		return vigil.NewFailure(vigil.ErrorKindNetworkError, message)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return vigil.NewFailure(vigil.ErrorKindNetworkError, "reading response body: "+err.Error())
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.successResult(req, resp.Header, payload)
	}

	return c.failureResult(req, endpoint, resp.StatusCode, payload)
}

// Get issues a GET request. Non-empty params are encoded as the query
// string.
func (c *Client) Get(ctx context.Context, path string, query url.Values) *vigil.Result {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body. The extractor, when
// non-nil, populates the envelope's pagination from response headers.
func (c *Client) Post(ctx context.Context, path string, body any, extractor vigil.PaginationExtractor) *vigil.Result {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body, Pagination: extractor})
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, extra map[string]string) {
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderAPIKey, c.apiKey)

	if c.orgID != "" {
		httpReq.Header.Set(HeaderOrganization, c.orgID)
		httpReq.Header.Set(HeaderTenant, c.orgID)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range extra {
		httpReq.Header.Set(key, value)
	}
}

func (c *Client) successResult(req *Request, headers nethttp.Header, payload []byte) *vigil.Result {
	var data any

	if len(bytes.TrimSpace(payload)) > 0 {
		err := json.Unmarshal(payload, &data)
		if err != nil {
			return vigil.NewFailure(vigil.ErrorKindServerError, "parsing response body: "+err.Error())
		}
	}

	var pagination *vigil.Pagination
	if req.Method == nethttp.MethodPost && req.Pagination != nil {
		pagination = req.Pagination(headers)
	}

	c.logger.Debug("request completed", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})

	return vigil.NewSuccessWithPagination(data, pagination)
}

func (c *Client) failureResult(req *Request, endpoint string, statusCode int, payload []byte) *vigil.Result {
	message := nethttp.StatusText(statusCode)
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	// The error body goes to logs only, truncated; the envelope carries
	// the status text.
	body := payload
	if len(body) > constants.MaxLoggedBodyBytes {
		body = body[:constants.MaxLoggedBodyBytes]
	}

	c.logger.Error("request failed", map[string]interface{}{
		"method": req.Method,
		"url":    endpoint,
		"status": statusCode,
		"body":   vigil.Redact(string(body), c.apiKey),
	})

	return vigil.NewHTTPFailure(statusCode, message)
}

// rootCause unwraps to the innermost error so the envelope carries the
// transport failure's own message rather than retry bookkeeping.
func rootCause(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}

		err = unwrapped
	}
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
