package config

// Defaults applied when a source leaves a field unset.
const (
	// DefaultTokenTTLSeconds is the token validity window used when
	// JWT_EXPIRATION is not configured: 24 hours.
	DefaultTokenTTLSeconds int64 = 86400

	// DefaultHTTPAddress is the bind address used when SERVER_ADDRESS is
	// not configured.
	DefaultHTTPAddress = ":8080"
)

// applyDefaults fills optional fields that no configuration source set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenTTLSeconds == 0 {
		cfg.App.TokenTTLSeconds = DefaultTokenTTLSeconds
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariants. Absence of a mandatory value is a fatal startup
// error, never a runtime error.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenTTLSeconds < 0 {
		return ErrInvalidTokenTTL
	}

	return nil
}
