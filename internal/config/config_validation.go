// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// defaultConfig returns the built-in lowest-priority configuration values.
// The token sign key deliberately has no default: leaving it unset must fail
// validation rather than silently sign sessions with a known value.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "greenchem",
			AdminInitialPassword: "admin123",
			ContactEmail:         "liwei@scies.org",
			Version:              "1.0.0",
		},
		Storage: Storage{
			DB:       DB{DSN: "data/greenchem.db"},
			Dataset:  Dataset{Path: "data/chemicals.csv"},
			QueryLog: QueryLog{Path: "data/query_logs.csv"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Session: Session{
			CookieName: "greenchem_session",
			ExpiryDays: 30,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and normalises
// derived values.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Session.ExpiryDays <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Dataset.Path == "" || cfg.Storage.QueryLog.Path == "" {
		return ErrInvalidStorageConfigs
	}

	// session tokens live as long as the cookie unless overridden
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = cfg.Session.CookieExpiry()
	}

	return nil
}
