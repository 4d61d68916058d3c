// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrNoCredentialsProvided is returned by the auth middleware when the
	// incoming request carries neither an "Authorization" header nor a
	// session cookie.
	ErrNoCredentialsProvided = errors.New("no credentials provided")

	// ErrAdminOnly is returned when a non-administrator account calls an
	// admin-only endpoint.
	ErrAdminOnly = errors.New("administrator access required")
)
