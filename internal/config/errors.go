package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no session token signing key was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("missing token sign key")
	// ErrInvalidSessionConfigs indicates invalid session cookie settings
	// (for example, a non-positive expiry).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or dataset path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
