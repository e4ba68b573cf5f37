package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses at the
// boundary with errors.Is. Handlers never inspect error text.
var (
	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot probe which addresses have accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound indicates a missing record on an authenticated read path.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable indicates the backing store could not be reached.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrTokenInvalid indicates a malformed, tampered, or foreign-signed token.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired indicates a token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
