package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer string // Required: issuer claim for session tokens

	DatasetURL  string // Optional: remote user dataset endpoint (primary source)
	DatasetFile string // Optional: local user dataset file (fallback source)

	DatabaseFile   string // Optional: path to SQLite database file (default: ./console.db)
	PepperFile     string // Optional: path to pepper file for password hashing (default: ./pepper)
	SigningKeyFile string // Optional: path to Ed25519 PEM key; empty means ephemeral

	AdminEmail    string // Optional: seed admin email (default: admin@novalend.test)
	AdminPassword string // Optional: seed admin password; generated when empty

	SessionTTL      time.Duration // Session token lifetime (default: 12h)
	MFAChallengeTTL time.Duration // Pending MFA challenge lifetime (default: 5m)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:               getEnvOrDefault("CONSOLE_ISSUER", "novalend-console"),
		DatasetURL:           os.Getenv("CONSOLE_DATASET_URL"),
		DatasetFile:          getEnvOrDefault("CONSOLE_DATASET_FILE", "users.json"),
		DatabaseFile:         getEnvOrDefault("CONSOLE_DATABASE_FILE", "console.db"),
		PepperFile:           getEnvOrDefault("CONSOLE_PEPPER_FILE", "pepper"),
		SigningKeyFile:       os.Getenv("CONSOLE_SIGNING_KEY_FILE"),
		AdminEmail:           getEnvOrDefault("CONSOLE_ADMIN_EMAIL", "admin@novalend.test"),
		AdminPassword:        os.Getenv("CONSOLE_ADMIN_PASSWORD"),
		SessionTTL:           getEnvDurationOrDefault("CONSOLE_SESSION_TTL", 12*time.Hour),
		MFAChallengeTTL:      getEnvDurationOrDefault("CONSOLE_MFA_CHALLENGE_TTL", 5*time.Minute),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
