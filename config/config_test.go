package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "SENTIMENT_BACKEND", "ANALYZER_OUTPUT_DIR", "LOG_LEVEL",
		"DATABRICKS_HOST", "DATABRICKS_PORT", "DATABRICKS_HTTP_PATH", "DATABRICKS_TOKEN",
		"DATABRICKS_CLIENT_ID", "DATABRICKS_CLIENT_SECRET",
		"VALKEY_INIT_ADDRESS", "SENTIMENT_CACHE_TTL", "ANALYSIS_TABLE", "AWS_REGION",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "dev", AppEnv())
	assert.Equal(t, DEFAULT_BACKEND, cfg.Backend)
	assert.Equal(t, DEFAULT_OUTPUT_DIR, cfg.OutputDir)
	assert.Equal(t, DEFAULT_PORT, cfg.Connection.Port)
	assert.Equal(t, DEFAULT_CACHE_TTL, cfg.Cache.TTL)
	assert.False(t, cfg.Connection.UsesOAuth())
	assert.False(t, cfg.Cache.Enabled())
	assert.False(t, cfg.Sink.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABRICKS_HOST", "adb-1.azuredatabricks.net")
	t.Setenv("DATABRICKS_HTTP_PATH", "/sql/1.0/warehouses/abc")
	t.Setenv("DATABRICKS_TOKEN", "dapi-token")
	t.Setenv("DATABRICKS_PORT", "8443")
	t.Setenv("DATABRICKS_CLIENT_ID", "sp")
	t.Setenv("DATABRICKS_CLIENT_SECRET", "secret")
	t.Setenv("VALKEY_INIT_ADDRESS", "localhost:6379")
	t.Setenv("VALKEY_TLS", "true")
	t.Setenv("SENTIMENT_CACHE_TTL", "60")
	t.Setenv("ANALYSIS_TABLE", "TextAnalysis")
	t.Setenv("SENTIMENT_BACKEND", "vader")
	t.Setenv("APP_ENV", "staging")

	cfg := Load()

	assert.Equal(t, "staging", AppEnv())

	assert.Equal(t, ConnectionConfig{
		Host:         "adb-1.azuredatabricks.net",
		Port:         8443,
		HTTPPath:     "/sql/1.0/warehouses/abc",
		Token:        "dapi-token",
		ClientID:     "sp",
		ClientSecret: "secret",
	}, cfg.Connection)
	assert.True(t, cfg.Connection.UsesOAuth())
	assert.True(t, cfg.Cache.Enabled())
	assert.True(t, cfg.Cache.TLS)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Sink.Enabled())
	assert.Equal(t, "vader", cfg.Backend)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "envs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile("test")),
		[]byte("DATABRICKS_HTTP_PATH=/sql/from-file\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("DATABRICKS_HTTP_PATH", "")
	require.NoError(t, os.Unsetenv("DATABRICKS_HTTP_PATH"))

	LoadEnv("test")

	assert.Equal(t, "/sql/from-file", os.Getenv("DATABRICKS_HTTP_PATH"))
	LoadEnv("missing")
}

func TestLoadCacheTTLFallsBackForNonPositive(t *testing.T) {
	for _, v := range []string{"0", "-5", "soon"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("SENTIMENT_CACHE_TTL", v)
			assert.Equal(t, DEFAULT_CACHE_TTL, Load().Cache.TTL)
		})
	}
}
