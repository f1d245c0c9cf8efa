// Package common contains constants shared by the client packages.
package common

// Durable storage keys. Token and user are always written and cleared together.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// WelcomeDismissedKey lives in process-scoped storage and is never persisted.
const WelcomeDismissedKey = "welcomeDismissed"

// HTTP header names set on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
