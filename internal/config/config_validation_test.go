package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:    "secret",
			TokenTTLSeconds: 3600,
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/kairos"},
		},
		Server: Server{HTTPAddress: ":8080"},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

// The signing secret has exactly one source: configuration. A missing
// secret is a fatal startup error, never a silent fallback.
func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrMissingTokenSignKey)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrMissingDatabaseDSN)
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenTTLSeconds = -1

	assert.ErrorIs(t, cfg.validate(), ErrInvalidTokenTTL)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultTokenTTLSeconds, cfg.App.TokenTTLSeconds)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:    App{TokenTTLSeconds: 600},
		Server: Server{HTTPAddress: ":9090"},
	}
	cfg.applyDefaults()

	assert.Equal(t, int64(600), cfg.App.TokenTTLSeconds)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
}

func TestTokenDuration(t *testing.T) {
	app := App{TokenTTLSeconds: 86400}
	assert.Equal(t, "24h0m0s", app.TokenDuration().String())
}
