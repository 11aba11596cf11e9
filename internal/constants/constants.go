// Package constants defines shared constants used across internal packages.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry timing.
const (
	// DefaultBackoffBase is the first retry delay; each further attempt
	// doubles it.
	DefaultBackoffBase = 500 * time.Millisecond
)

// Logging limits.
const (
	// MaxLoggedBodyBytes truncates error response bodies attached to
	// diagnostic logs. Bodies are never attached to returned envelopes.
	MaxLoggedBodyBytes = 512
)
