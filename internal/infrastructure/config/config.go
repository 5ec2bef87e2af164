package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// Persistence selects which storage backend the process runs against. It is
// read once at startup and never changes for the process lifetime.
type Persistence string

const (
	PersistenceFS    Persistence = "FS"
	PersistenceMongo Persistence = "MONGO"
)

// Config holds application configuration values.
type Config struct {
	Persistence              Persistence
	MongoURI                 string
	MongoDBName              string
	DataDir                  string
	AppBaseURL               string
	RefreshTokenExpiry       time.Duration
	PasswordResetTokenExpiry time.Duration
	InactivityThreshold      time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Persistence:              parsePersistence(getEnv("PERSISTENCE", "")),
		MongoURI:                 getEnv("MONGODB_URI", ""),
		MongoDBName:              getEnv("MONGODB_DB_NAME", "ecommerce"),
		DataDir:                  getEnv("FS_DATA_DIR", "data"),
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		RefreshTokenExpiry:       time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		PasswordResetTokenExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 15)),
		InactivityThreshold:      time.Hour * time.Duration(getEnvAsInt("INACTIVITY_THRESHOLD_HOURS", 48)),
	}
}

// parsePersistence maps the PERSISTENCE env value onto a backend. Anything
// other than MONGO falls back to the file store.
func parsePersistence(v string) Persistence {
	if strings.EqualFold(v, string(PersistenceMongo)) {
		return PersistenceMongo
	}
	return PersistenceFS
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// GetInactivityThreshold returns how long a user may stay disconnected before
// the inactive-account sweep removes it.
func (c *Config) GetInactivityThreshold() time.Duration {
	return c.InactivityThreshold
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
