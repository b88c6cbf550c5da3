package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "https://fed-medical-clinic-api.vercel.app", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, "/login", cfg.API.LoginPath)
	assert.Equal(t, DependentsFilter, cfg.Cascade.Dependents)
	assert.Equal(t, PatientPolicyExclusive, cfg.Cascade.PatientPolicy)
	assert.True(t, cfg.IsDev())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:9000/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("CASCADE_DEPENDENTS", "NESTED")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, DependentsNested, cfg.Cascade.Dependents)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=9191\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_RejectsUnknownPolicy(t *testing.T) {
	t.Setenv("CASCADE_PATIENT_POLICY", "everything")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "CASCADE_PATIENT_POLICY")
}
