// Package config provides configuration for the chat relay.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultAPIKey is the documented fallback credential for the CHAI endpoint.
const defaultAPIKey = "CR_14d43f2bf78b4b0590c2a8b87f354746"

// Config holds the relay configuration.
type Config struct {
	// Server settings
	HTTPPort     int
	AllowOrigins []string

	// CHAI endpoint settings
	ChaiAPIKey  string
	ChaiBaseURL string
	ChaiTimeout time.Duration

	// Retry settings
	MaxRetries int
	MaxBackoff time.Duration

	// Connection pool caps
	PoolMaxConns        int
	PoolMaxConnsPerHost int

	// WebSocket settings
	WSMaxMessageSize int64

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:            getEnvInt("PORT", 8000),
		AllowOrigins:        getEnvList("ALLOW_ORIGINS", "http://localhost:8501,http://localhost:3000"),
		ChaiAPIKey:          getEnv("CHAI_API_KEY", defaultAPIKey),
		ChaiBaseURL:         getEnv("CHAI_BASE_URL", ""),
		ChaiTimeout:         time.Duration(getEnvInt("CHAI_TIMEOUT_MS", 30000)) * time.Millisecond,
		MaxRetries:          getEnvInt("CHAI_MAX_RETRIES", 3),
		MaxBackoff:          time.Duration(getEnvInt("CHAI_MAX_BACKOFF_MS", 60000)) * time.Millisecond,
		PoolMaxConns:        getEnvInt("POOL_MAX_CONNS", 100),
		PoolMaxConnsPerHost: getEnvInt("POOL_MAX_CONNS_PER_HOST", 30),
		WSMaxMessageSize:    int64(getEnvInt("WS_MAX_MESSAGE_SIZE", 65536)),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvList(key, defaultVal string) []string {
	return strings.Split(getEnv(key, defaultVal), ",")
}
