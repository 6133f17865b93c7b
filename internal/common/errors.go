// Package common defines shared constants and sentinel errors used across
// qrkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Entitlement token errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Input validation errors.
	ErrorEmptyContent = errors.New("empty content")
	ErrorMissingImage = errors.New("missing image data")
	ErrorUnknownKind  = errors.New("unknown content kind")
)
