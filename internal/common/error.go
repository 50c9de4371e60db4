// Package common defines shared sentinel errors used across the FinBuddy
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnavailable  = errors.New("storage unavailable")

	// Credential errors. Absent user and wrong password must be
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// Token decode errors. Distinguishable internally, collapsed to a
	// generic unauthorized response at the API boundary.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")

	// Refresh flow errors.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidTokenType    = errors.New("invalid token type")
)
