package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsUseMemoryStore(t *testing.T) {
	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "pet-adoption-api", cfg.App.Name)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 2, cfg.Store.MaxRetries)
}

func TestUnsetEnvIsNotDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Env)
	assert.False(t, cfg.IsDevelopment())
}

func TestDevelopmentMustBeExplicit(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
}

func TestDriverInferredFromDSN(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("APP_ENV", "Production")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.False(t, cfg.IsDevelopment())
}

func TestDriverInferredFromSupabaseURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("STORE_TIMEOUT", "3s")

	cfg, err := FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgREST, cfg.Store.Driver)
	assert.Equal(t, "https://abc.supabase.co", cfg.Store.SupabaseURL)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
}

func TestPostgRESTRequiresKey(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgrest")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")

	_, err := FromViper(newViper())
	assert.Error(t, err)
}

func TestRejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := FromViper(newViper())
	assert.Error(t, err)
}
