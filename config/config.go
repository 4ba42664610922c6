package config

import (
	"os"
	"strconv"
)

// InsecureDefaultSessionSecret is used when SESSION_SECRET is unset. main
// logs a warning when it is in effect; never deploy with it.
const InsecureDefaultSessionSecret = "dev-secret-key-change-in-production"

type Config struct {
	// DatabasePath is the SQLite connection string for the fleet store.
	DatabasePath string

	// SessionSecret signs session cookies.
	SessionSecret string

	// RedisAddr, when set, switches the session store to Redis so sessions
	// survive restarts and can be shared between processes.
	RedisAddr string

	// ResetDBOnStartup drops and reseeds the schema on boot. Matches the
	// wipe-on-start behavior of the system this backend replaces.
	ResetDBOnStartup bool

	// CORSAllowedOrigin is the frontend origin allowed to call the API.
	CORSAllowedOrigin string

	Port string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DatabasePath:      getEnvOrDefault("DATABASE_PATH", "fleet.db"),
		SessionSecret:     getEnvOrDefault("SESSION_SECRET", InsecureDefaultSessionSecret),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		ResetDBOnStartup:  getEnvBoolOrDefault("RESET_DB_ON_STARTUP", true),
		CORSAllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		Port:              getEnvOrDefault("PORT", "8080"),
	}
	return cfg, nil
}

// UsingInsecureSessionSecret reports whether the insecure development
// default is in effect.
func (c Config) UsingInsecureSessionSecret() bool {
	return c.SessionSecret == InsecureDefaultSessionSecret
}
