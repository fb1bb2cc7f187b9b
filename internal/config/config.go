package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PresignExpirySec bounds how long an exported PDF download URL stays valid.
	PresignExpirySec int
}

// AuthConfig holds JWT settings for owner authentication.
type AuthConfig struct {
	JWTSecret string
	TTLHours  int
	// DevTokens enables POST /auth/token. Never enable outside local development.
	DevTokens bool
}

// LinksConfig holds settings for shareable resume links.
type LinksConfig struct {
	PublicBaseURL string
	BcryptCost    int
}

// AIConfig selects the description generator backend.
type AIConfig struct {
	Provider string // openai, gemini or none
	BaseURL  string
	APIKey   string
	Model    string
}

// EventsConfig holds the AMQP broker settings for analytics events.
type EventsConfig struct {
	AMQPURL  string
	Exchange string
}

// RenderConfig holds PDF rendering settings.
type RenderConfig struct {
	ChromePath    string
	PDFTimeoutSec int
}

// RateLimitConfig bounds the rate of expensive endpoints per client.
type RateLimitConfig struct {
	Max       int
	WindowSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	AppScheme string
	Port      string
	Timezone  string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Auth      AuthConfig
	Links     LinksConfig
	AI        AIConfig
	Events    EventsConfig
	Render    RenderConfig
	RateLimit RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		AppScheme: getEnv("APP_SCHEME", "http"),
		Port:      getEnv("PORT", "8080"),
		Timezone:  getEnv("APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:         getEnv("MINIO_ENDPOINT", ""),
			AccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getEnv("MINIO_SECRET_KEY", ""),
			Bucket:           getEnv("MINIO_BUCKET", ""),
			UseSSL:           getEnvBool("MINIO_USE_SSL", false),
			PresignExpirySec: getEnvInt("MINIO_PRESIGN_EXPIRY_SEC", 900),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TTLHours:  getEnvInt("JWT_TTL_HOURS", 24),
			DevTokens: getEnvBool("AUTH_DEV_TOKENS", false),
		},
		Links: LinksConfig{
			PublicBaseURL: getEnv("LINKS_PUBLIC_BASE_URL", "http://localhost:8080"),
			BcryptCost:    getEnvInt("LINKS_BCRYPT_COST", 10),
		},
		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", "none"),
			BaseURL:  getEnv("AI_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:   getEnv("AI_API_KEY", ""),
			Model:    getEnv("AI_MODEL", "openai/gpt-4o-mini"),
		},
		Events: EventsConfig{
			AMQPURL:  getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "resume_events"),
		},
		Render: RenderConfig{
			ChromePath:    getEnv("CHROME_PATH", ""),
			PDFTimeoutSec: getEnvInt("PDF_TIMEOUT_SEC", 30),
		},
		RateLimit: RateLimitConfig{
			Max:       getEnvInt("RATE_LIMIT_MAX", 30),
			WindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		},
	}
}

// Validate checks ranges that would otherwise fail late at request time.
func (c *AppConfig) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config error: JWT_SECRET is required")
	}
	if c.Auth.TTLHours < 1 {
		return fmt.Errorf("config error: JWT_TTL_HOURS must be at least 1, got %d", c.Auth.TTLHours)
	}
	if c.Links.BcryptCost < 4 || c.Links.BcryptCost > 14 {
		return fmt.Errorf("config error: LINKS_BCRYPT_COST out of range: %d (must be 4-14)", c.Links.BcryptCost)
	}
	switch c.AI.Provider {
	case "none", "openai", "gemini":
	default:
		return fmt.Errorf("config error: unsupported AI_PROVIDER %q", c.AI.Provider)
	}
	if c.AI.Provider != "none" && c.AI.APIKey == "" {
		return fmt.Errorf("config error: AI_API_KEY is required for provider %s", c.AI.Provider)
	}
	switch c.AppScheme {
	case "", "http", "https":
	default:
		return fmt.Errorf("config error: APP_SCHEME must be http or https, got %q", c.AppScheme)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config error: invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured log timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
