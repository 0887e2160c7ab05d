package service

import "errors"

// Common service errors.
var (
	// ErrInvalidCredentials is returned when login fails, regardless of
	// whether the email was unknown or the password wrong. Callers get one
	// indistinct answer so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("unable to login")

	// ErrAvatarNotSet is returned when a user exists but has no avatar.
	ErrAvatarNotSet = errors.New("avatar not set")
)
