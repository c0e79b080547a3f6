package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fluxline/accountd/internal/accounts/domain"
)

// InsecureSecretPlaceholder is the default session secret shipped in example
// configs. Running with it in prod is a startup failure.
const InsecureSecretPlaceholder = "this.is.not.secure"

type Config struct {
	Issuer        string          // Issuer claim for session tokens (default: accountd)
	SessionSecret string          // Required: HMAC secret for session tokens
	SessionTTL    time.Duration   // Session token lifetime (default: 30 days)
	Roles         domain.RoleList // Ordered role list, least privileged first

	DatabaseFile        string        // Path to SQLite database file (default: ./accountd.db)
	ClientOrigin        string        // Allowed CORS origin (default: http://localhost:3000)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("ACCOUNTD_ISSUER", "accountd"),
		SessionSecret:       getEnvOrDefault("SESSION_SECRET", InsecureSecretPlaceholder),
		SessionTTL:          getEnvDurationOrDefault("SESSION_TTL", 30*24*time.Hour),
		Roles:               parseRoles(os.Getenv("ACCOUNTD_ROLES")),
		DatabaseFile:        getEnvOrDefault("ACCOUNTD_DATABASE_FILE", "accountd.db"),
		ClientOrigin:        getEnvOrDefault("CLIENT_ORIGIN", "http://localhost:3000"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

// parseRoles reads a comma-separated role list, least privileged first.
func parseRoles(raw string) domain.RoleList {
	if raw == "" {
		return domain.DefaultRoles()
	}

	parts := strings.Split(raw, ",")
	roles := make(domain.RoleList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}

	if len(roles) == 0 {
		return domain.DefaultRoles()
	}
	return roles
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
