// Package common contains shared constants and sentinel errors used across
// minired components.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token inside AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader correlates client requests with server log lines.
	RequestIDHeader = "X-Request-ID"

	// TokenMetadataKey is the durable storage key of the credential token.
	TokenMetadataKey = "token"

	// DefaultAPIURL is the backend base address when nothing else is configured.
	DefaultAPIURL = "http://localhost:5000/api"
)
