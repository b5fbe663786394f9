package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "inventory_system", cfg.Mongo.Database)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoadDesdeEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MONGO_URI", "mongodb://mongo.interno:27017")
	t.Setenv("MONGO_DB", "inventory_test")
	t.Setenv("JWT_SECRET", "clave-de-prueba")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "mongodb://mongo.interno:27017", cfg.Mongo.URI)
	assert.Equal(t, "inventory_test", cfg.Mongo.Database)
	assert.Equal(t, 15, cfg.JWT.Expiration)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadSecretObligatorioFueraDeDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
