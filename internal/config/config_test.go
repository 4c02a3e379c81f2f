package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "test-key",
		"database_url": "postgres://localhost/leadscore",
		"concurrency": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/leadscore", cfg.DatabaseURL)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{Concurrency: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestValidate_MissingJobsFile(t *testing.T) {
	cfg := &Config{Jobs: "/nonexistent/jobs.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jobs file not found")
}

func TestValidate_OK(t *testing.T) {
	jobs := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(jobs, []byte("[]"), 0644))

	cfg := &Config{Jobs: jobs, Concurrency: 4}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	defaults := Config{
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/leadscore",
		ListenAddr:  ":8080",
		Concurrency: 8,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, "postgres://localhost/leadscore", merged.DatabaseURL)
	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, 8, merged.Concurrency)
}

func TestMergeWithDefaults_ConcurrencyFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 4, merged.Concurrency)
}

func TestLoadSettings_EmptyPathUsesDefaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, 60.0, settings.MinScore)
	assert.Equal(t, 70.0, settings.MinEHR)
	assert.NotEmpty(t, settings.Keywords.All())
}

func TestLoadSettings_OverridesDefaults(t *testing.T) {
	content := `{"min_score": 75, "min_ehr": 90}`
	tmpFile := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	settings, err := LoadSettings(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 75.0, settings.MinScore)
	assert.Equal(t, 90.0, settings.MinEHR)
}

func TestLoadSettings_RejectsOutOfRange(t *testing.T) {
	content := `{"min_score": 140}`
	tmpFile := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	settings, err := LoadSettings(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, settings)
}
