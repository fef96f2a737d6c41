// config/config.go - Environment configuration
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr    string
	MetricsAddr string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	GoogleServiceAccountKey string
	GoogleSheetID           string

	BasePublicURL string
	CORSOrigins   string

	RateLimitMaxRequests    int
	RateLimitWindowSeconds  int
	RegisterLimitMax        int
	RegisterLimitWindowSecs int
}

// FromEnv loads configuration from environment variables. The sheets
// credential and sheet ID may be empty; the integration is then disabled.
func FromEnv() Config {
	var c Config

	c.HTTPAddr = ":" + getEnv("PORT", "3000")
	c.MetricsAddr = ":" + getEnv("METRICS_PORT", "9100")

	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	c.DBHost = getEnv("DB_HOST", "localhost")
	c.DBPort = getEnv("DB_PORT", "5432")
	c.DBUser = getEnv("DB_USER", "postgres")
	c.DBPassword = os.Getenv("DB_PASSWORD")
	c.DBName = getEnv("DB_NAME", "ythwknd")
	c.DBSSLMode = getEnv("DB_SSLMODE", "disable")

	c.GoogleServiceAccountKey = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"))
	c.GoogleSheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEET_ID"))

	c.BasePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_PUBLIC_URL")), "/")
	c.CORSOrigins = getEnv("CORS_ORIGINS", "http://localhost:3000")

	c.RateLimitMaxRequests = getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100)
	c.RateLimitWindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_MS", 900000) / 1000
	c.RegisterLimitMax = getEnvInt("REGISTER_RATE_LIMIT_MAX", 10)
	c.RegisterLimitWindowSecs = getEnvInt("REGISTER_RATE_LIMIT_WINDOW_MS", 300000) / 1000

	if c.RateLimitWindowSeconds <= 0 {
		c.RateLimitWindowSeconds = 900
	}
	if c.RegisterLimitWindowSecs <= 0 {
		c.RegisterLimitWindowSecs = 300
	}

	return c
}

// DSN builds the Postgres connection string, preferring DATABASE_URL.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// SheetsConfigured reports whether the spreadsheet integration has both the
// credential blob and a document ID.
func (c Config) SheetsConfigured() bool {
	return c.GoogleServiceAccountKey != "" && c.GoogleSheetID != ""
}

// InviteURL builds the shareable invite link for a code.
func (c Config) InviteURL(code string) string {
	return c.BasePublicURL + "/invite/" + code
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
