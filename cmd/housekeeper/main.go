package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	orderspostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/persistence/postgres"
	userspostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/adapters/persistence/postgres"
	platformpostgres "github.com/mohamedsham20017/ecommerce-website/internal/platform/postgres"
)

// housekeeper runs the periodic maintenance tasks as a one-shot job:
// expired sessions are purged and, when a retention window is set, old
// orders are deleted. Intended to run from cron.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	db, cleanup := platformpostgres.ConnectOptional(ctx, dsn, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; nothing to clean")
	}

	sessions := userspostgres.NewSessionStore(db, sessionTTLFromEnv())
	if err := sessions.PurgeExpired(ctx); err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	logger.Info("session purge completed")

	if days := retentionDaysFromEnv(); days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days)
		deleted, err := orderspostgres.NewRepository(db).DeleteOlderThan(ctx, cutoff)
		if err != nil {
			log.Fatalf("failed to delete old orders: %v", err)
		}
		logger.Info("order retention applied",
			slog.Int("retentionDays", days),
			slog.Int64("deleted", deleted))
	}
}

func sessionTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS"))
	if raw == "" {
		return userspostgres.DefaultSessionTTL
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return userspostgres.DefaultSessionTTL
	}
	return time.Duration(hours) * time.Hour
}

// retentionDaysFromEnv returns 0 when orders should be kept forever.
func retentionDaysFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("ORDER_RETENTION_DAYS"))
	if raw == "" {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		return 0
	}
	return days
}
