// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// greenchem application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// admin bootstrap password, and the escalation contact address.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// credential database, the chemical dataset file, and the query log file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds the browser session cookie settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, bootstrap behavior, and user-facing constants.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "12h"). When zero it is derived from the session cookie
	// expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminInitialPassword is the password assigned to the "admin" account
	// when it is created at first startup. Ignored once the account exists.
	// Env: APP_ADMIN_INITIAL_PASSWORD
	AdminInitialPassword string `env:"ADMIN_INITIAL_PASSWORD"`

	// ContactEmail is the escalation address shown to users when a queried
	// CAS number is missing from the dataset.
	// Env: APP_CONTACT_EMAIL
	ContactEmail string `env:"CONTACT_EMAIL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all persistence backends used by the
// application.
type Storage struct {
	// DB holds the credential database connection settings.
	DB DB `envPrefix:"DB_"`

	// Dataset holds the chemical dataset file settings.
	Dataset Dataset `envPrefix:"DATASET_"`

	// QueryLog holds the append-only query log file settings.
	QueryLog QueryLog `envPrefix:"QUERY_LOG_"`
}

// DB holds connection settings for the credential database. The backend is
// selected from the DSN: "postgres://..." opens PostgreSQL, anything else is
// treated as a SQLite file path.
type DB struct {
	// DSN is the database connection string or SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Dataset holds the location of the read-only chemical dataset.
type Dataset struct {
	// Path is the CSV dataset file, loaded once at startup.
	// Env: STORAGE_DATASET_PATH
	Path string `env:"PATH"`
}

// QueryLog holds the location of the append-only audit log.
type QueryLog struct {
	// Path is the CSV query log file, created lazily on first append.
	// Env: STORAGE_QUERY_LOG_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds the browser session cookie settings.
type Session struct {
	// CookieName is the name of the cookie holding the session token.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// ExpiryDays is the cookie lifetime in days.
	// Env: SESSION_EXPIRY_DAYS
	ExpiryDays int `env:"EXPIRY_DAYS"`
}

// CookieExpiry returns the session cookie lifetime as a duration.
func (s Session) CookieExpiry() time.Duration {
	return time.Duration(s.ExpiryDays) * 24 * time.Hour
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
