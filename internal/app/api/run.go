package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	catalogmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/application"
	catalogdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/domain"
	catalogports "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
	ordersmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/memory"
	ordersobs "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/application"
	ordersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
	usersmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/adapters/memory"
	userspostgres "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/application"
	usersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
	platformmigrations "github.com/mohamedsham20017/ecommerce-website/internal/platform/migrations"
	platformobservability "github.com/mohamedsham20017/ecommerce-website/internal/platform/observability"
	platformpostgres "github.com/mohamedsham20017/ecommerce-website/internal/platform/postgres"
	"github.com/mohamedsham20017/ecommerce-website/internal/web"
)

// Run boots the storefront HTTP server with observability, repositories,
// and the web surface wired.
func Run(ctx context.Context) error {
	const serviceName = "ecommerce-website"

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	stores := buildStores(db, cfg, logger)

	ordersService := ordersobs.New(
		ordersapp.NewService(stores.orders),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	usersService := usersapp.NewService(stores.users, stores.sessions)
	catalogService := catalogapp.NewService(stores.catalog)

	if cfg.SeedCatalog {
		if err := seedCatalog(ctx, stores.catalog); err != nil {
			logger.Warn("seeding catalog", slog.String("error", err.Error()))
		}
	}

	router, err := web.NewRouter(web.RouterConfig{
		Users:          usersService,
		Catalog:        catalogService,
		Orders:         ordersService,
		Idempotency:    stores.idempotency,
		Logger:         logger,
		SessionTTL:     cfg.SessionTTL,
		SecureCookies:  cfg.SecureCookies,
		AllowedOrigins: cfg.AllowedOrigins,
		Middleware:     []gin.HandlerFunc{otelgin.Middleware(serviceName)},
	})
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	logger.Info("storefront listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type stores struct {
	orders      ordersports.Repository
	idempotency ordersports.IdempotencyStore
	users       usersports.Repository
	sessions    usersports.SessionStore
	catalog     catalogports.Repository
}

func buildStores(db *gorm.DB, cfg Config, logger *slog.Logger) stores {
	if db == nil {
		logger.Warn("running with in-memory stores; data is lost on restart")
		return stores{
			orders:      ordersmemory.NewRepository(),
			idempotency: ordersmemory.NewIdempotencyStore(),
			users:       usersmemory.NewRepository(),
			sessions:    usersmemory.NewSessionStore(cfg.SessionTTL),
			catalog:     catalogmemory.NewRepository(),
		}
	}
	logger.Info("stores configured with postgres")
	return stores{
		orders:      orderspostgres.NewRepository(db),
		idempotency: orderspostgres.NewIdempotencyStore(db),
		users:       userspostgres.NewRepository(db),
		sessions:    userspostgres.NewSessionStore(db, cfg.SessionTTL),
		catalog:     catalogpostgres.NewRepository(db),
	}
}

// seedCatalog inserts the default storefront categories and a starter
// product per category when the catalog is empty.
func seedCatalog(ctx context.Context, repo catalogports.Repository) error {
	existing, err := repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := []struct {
		title   string
		product string
		desc    string
		cents   int64
	}{
		{"Phones", "Phone", "Flagship smartphone with a two-year warranty.", 18500000},
		{"Laptops", "Laptop", "Lightweight laptop for work and study.", 32500000},
		{"Tablets", "Tablet", "Ten-inch tablet with stylus support.", 12900000},
	}
	for _, seed := range seeds {
		category, err := catalogdomain.NewCategory(seed.title, "")
		if err != nil {
			return err
		}
		saved, err := repo.SaveCategory(ctx, category)
		if err != nil {
			return err
		}
		product, err := catalogdomain.NewProduct(saved.ID, seed.product, seed.desc, seed.cents, nil)
		if err != nil {
			return err
		}
		if _, err := repo.SaveProduct(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
