// Package common contains constants shared by the csclient packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token value in AuthorizationHeaderName.
	BearerScheme = "Bearer "

	// RequestIDHeaderName correlates a request with client log lines.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultAPIPrefix is the path of the versioned REST API on the backend.
	DefaultAPIPrefix = "/api/v0"
)
