package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_DATABASE", "strengthdb")
	t.Setenv("DB_USER", "strengthdb")
	t.Setenv("AUTHZ_URL", "http://localhost:8080")
	t.Setenv("AUTHZ_CLIENT_ID", "client-id")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBType)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8888")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_CONNECTION_LIMIT", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8888", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 20, cfg.DBConnectionLimit)
}

func TestLoadRequiresDatabase(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DATABASE", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresUserExceptSqlite(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_USER", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_TYPE", "sqlite")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_CONNECTION_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
}
