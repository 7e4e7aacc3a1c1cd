package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Production enforces the origin allow-list; any other value bypasses
	// the check so local frontends can reach the API.
	Env string
	// Origin allow-list for the public intake endpoints
	AllowedOrigins []string
	// SMTP Configuration (Brevo)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender email (different from SMTP login)
	OwnerEmail    string // Where contact/quote notifications land
	// Redis/Upstash Configuration (optional, shared rate-limit counters)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitThreshold     int
	// Request body ceiling for the intake endpoints, in bytes
	MaxBodyBytes int
	// Timezone used to render dates in outgoing emails
	Timezone string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"https://clyvuum.fr,https://www.clyvuum.fr,https://clyvuum.com,https://www.clyvuum.com")),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@clyvuum.fr"),
		OwnerEmail:    getEnv("OWNER_EMAIL", "contact@clyvuum.fr"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitThreshold:     getEnvInt("RATE_LIMIT_THRESHOLD", 5),      // 5 requests per window
		// Request body ceiling
		MaxBodyBytes: getEnvInt("MAX_BODY_BYTES", 16384),
		// Email date rendering
		Timezone: getEnv("EMAIL_TIMEZONE", "Europe/Paris"),
	}

	return cfg, nil
}

// IsProduction reports whether the origin allow-list should be enforced.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RateLimitWindow returns the configured window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// splitList parses a comma-separated env value, dropping empty items
// and trailing slashes (prevents allow-list misses on https://x.fr/)
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.TrimRight(trimmed, "/"))
		}
	}
	return out
}
