// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// greenchem server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgSearchFieldsRequired is returned when a lookup request misses the
	// CAS number or the usage purpose.
	MsgSearchFieldsRequired = "CAS号和使用用途不能为空"

	// MsgSearchUnavailable is returned when the chemical dataset failed to
	// load at startup and lookups cannot be served.
	MsgSearchUnavailable = "数据集未加载，查询暂不可用"

	// MsgUsernameAlreadyExists is returned when an account creation attempt
	// is rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgNoUserWasFound is returned when an admin operation targets an
	// account that does not exist.
	MsgNoUserWasFound = "no user was found"

	// MsgAdminProtected is returned when an admin attempts to delete the
	// built-in administrator account.
	MsgAdminProtected = "admin account cannot be removed"
)
