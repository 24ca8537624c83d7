package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration for one surface.
type Config struct {
	AppPort       string // HTTP listen port
	DBDriver      string // "sqlite" or "postgres"
	DBDSN         string // driver-specific connection string
	SessionSecret string // HMAC secret for session cookies
	APIKey        string // shared secret for the report-closed endpoint
	AllowedOrigin string // extra CORS origin
	IsProd        bool   // release mode toggle
}

// Load reads configuration from the environment, falling back to the
// given defaults for the port and database DSN. The two binaries pass
// different defaults so each surface keeps its own database file.
func Load(defaultPort, defaultDSN string) *Config {
	_ = godotenv.Load()
	return &Config{
		AppPort:       getenv("APP_PORT", defaultPort),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBDSN:         getenv("DB_DSN", defaultDSN),
		SessionSecret: getenv("SESSION_SECRET", "dev-session-secret"),
		APIKey:        getenv("API_KEY", "MySecretKey"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGINS"),
		IsProd:        os.Getenv("IS_PROD") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
