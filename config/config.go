package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_OUTPUT_DIR = "/dbfs/tmp"
	DEFAULT_BACKEND    = "databricks"
	DEFAULT_PORT       = 443
	DEFAULT_CACHE_TTL  = 24 * time.Hour
)

// ConnectionConfig locates and authenticates against the Databricks SQL
// warehouse. Values are not validated; a bad value shows up as a
// connection failure.
type ConnectionConfig struct {
	Host         string
	Port         int
	HTTPPath     string
	Token        string
	ClientID     string
	ClientSecret string
}

func (c ConnectionConfig) UsesOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type CacheConfig struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

func (c CacheConfig) Enabled() bool {
	return c.Address != ""
}

type SinkConfig struct {
	Table    string
	Region   string
	Endpoint string
}

func (c SinkConfig) Enabled() bool {
	return c.Table != ""
}

type Config struct {
	Backend    string
	OutputDir  string
	LogLevel   string
	Connection ConnectionConfig
	Cache      CacheConfig
	Sink       SinkConfig
}

// AppEnv names the env file LoadEnv picks up, "dev" when APP_ENV is unset.
func AppEnv() string {
	return getEnv("APP_ENV", "dev")
}

// Load reads the configuration from the environment once.
func Load() Config {
	return Config{
		Backend:   getEnv("SENTIMENT_BACKEND", DEFAULT_BACKEND),
		OutputDir: getEnv("ANALYZER_OUTPUT_DIR", DEFAULT_OUTPUT_DIR),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Connection: ConnectionConfig{
			Host:         os.Getenv("DATABRICKS_HOST"),
			Port:         getEnvInt("DATABRICKS_PORT", DEFAULT_PORT),
			HTTPPath:     os.Getenv("DATABRICKS_HTTP_PATH"),
			Token:        os.Getenv("DATABRICKS_TOKEN"),
			ClientID:     os.Getenv("DATABRICKS_CLIENT_ID"),
			ClientSecret: os.Getenv("DATABRICKS_CLIENT_SECRET"),
		},
		Cache: CacheConfig{
			Address:  os.Getenv("VALKEY_INIT_ADDRESS"),
			Password: os.Getenv("VALKEY_PASSWORD"),
			TLS:      os.Getenv("VALKEY_TLS") == "true",
			TTL:      cacheTTL(),
		},
		Sink: SinkConfig{
			Table:    os.Getenv("ANALYSIS_TABLE"),
			Region:   getEnv("AWS_REGION", "us-west-2"),
			Endpoint: os.Getenv("AWS_ENDPOINT"),
		},
	}
}

// cacheTTL falls back to the default for non-positive values; valkey
// rejects SET with EX 0.
func cacheTTL() time.Duration {
	seconds := getEnvInt("SENTIMENT_CACHE_TTL", int(DEFAULT_CACHE_TTL.Seconds()))
	if seconds <= 0 {
		return DEFAULT_CACHE_TTL
	}
	return time.Duration(seconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
