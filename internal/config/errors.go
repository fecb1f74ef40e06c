package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when mandatory
// configuration is missing or malformed.
var (
	// ErrMissingDatabaseDSN indicates the database connection string was
	// not provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey indicates the token signing secret was not
	// provided by any configuration source. There is no hard-coded
	// fallback.
	ErrMissingTokenSignKey = errors.New("token signing secret is required")

	// ErrInvalidTokenTTL indicates a negative token TTL was configured.
	ErrInvalidTokenTTL = errors.New("token TTL must be positive")
)
