package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	userpostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/adapters/persistence/postgres"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port           string
	PostgresDSN    string
	SessionTTL     time.Duration
	SecureCookies  bool
	AllowedOrigins []string
	SeedCatalog    bool
}

// LoadConfig reads a local .env file when present, then the environment,
// applying defaults and validating basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:          envDefault("PORT", "8080"),
		PostgresDSN:   strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SessionTTL:    userpostgres.DefaultSessionTTL,
		SecureCookies: isTruthy(os.Getenv("SECURE_COOKIES")),
		SeedCatalog:   !isTruthy(os.Getenv("SKIP_CATALOG_SEED")),
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
