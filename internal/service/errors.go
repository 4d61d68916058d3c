package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAdminProtected is returned when an operation would remove the
	// built-in administrator account.
	ErrAdminProtected = errors.New("admin account cannot be removed")

	// ErrSearchUnavailable is returned when the substance dataset failed to
	// load at startup and lookups cannot be served.
	ErrSearchUnavailable = errors.New("dataset is not loaded, search unavailable")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
