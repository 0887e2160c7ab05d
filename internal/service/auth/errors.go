package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't verify against the configured secret.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrRevokedToken indicates a well-signed token that is no longer in the
	// user's active token list, i.e. it has been logged out.
	ErrRevokedToken = errors.New("authentication token has been revoked")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
