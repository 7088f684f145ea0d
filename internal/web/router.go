package web

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	catalogports "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/ports"
	ordersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/ports"
	usersports "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/ports"
	sharederrors "github.com/mohamedsham20017/ecommerce-website/internal/shared/errors"
)

// RouterConfig carries everything the HTTP surface needs.
type RouterConfig struct {
	Users       usersports.Service
	Catalog     catalogports.Service
	Orders      ordersports.Service
	Idempotency ordersports.IdempotencyStore

	Logger        *slog.Logger
	SessionTTL    time.Duration
	SecureCookies bool
	// AllowedOrigins configures CORS for the JSON API. Empty means no
	// cross-origin access.
	AllowedOrigins []string
	// Middleware is prepended to the chain, ahead of session resolution.
	Middleware []gin.HandlerFunc
}

// NewRouter assembles the gin engine: HTML pages, auth, and the JSON API.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	for _, mw := range cfg.Middleware {
		router.Use(mw)
	}
	router.Use(LoadIdentity(cfg.Users, cfg.Logger))
	router.Use(LoadCategories(cfg.Catalog, cfg.Logger))

	auth := NewAuthHandlers(cfg.Users, cfg.Logger, int(cfg.SessionTTL.Seconds()), cfg.SecureCookies)
	purchase := NewPurchaseHandlers(cfg.Orders, cfg.Logger)
	catalog := NewCatalogHandlers(cfg.Catalog, cfg.Logger)
	api := NewAPIHandlers(cfg.Orders, cfg.Idempotency, cfg.Logger)

	pages := router.Group("/", CSRFProtect(cfg.SecureCookies))
	pages.GET("/", catalog.Home)
	pages.GET("/products", catalog.ListCategories)
	pages.GET("/products/:slug", catalog.ShowCategory)

	pages.GET("/login", auth.ShowLogin)
	pages.POST("/login", auth.Login)
	pages.GET("/register", auth.ShowRegister)
	pages.POST("/register", auth.Register)
	pages.GET("/logout", auth.Logout)

	authed := pages.Group("/", RequireAuth())
	authed.GET("/purchase", purchase.ShowForm)
	authed.POST("/purchase", purchase.Submit)
	authed.GET("/purchase/myorders", purchase.MyOrders)
	authed.GET("/myorders", purchase.MyOrders)

	apiGroup := router.Group("/api/v1")
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowCredentials = true
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, IdempotencyKeyHeader)
		apiGroup.Use(cors.New(corsCfg))
	}
	apiGroup.Use(api.RequireAuthJSON)
	apiGroup.POST("/orders", api.CreateOrder)
	apiGroup.GET("/orders", api.ListOrders)

	notFound := sharederrors.NewResponder().WithHTMLRenderer(func(c *gin.Context, _ sharederrors.ProblemDetail) {
		NotFoundPage(c)
	})
	router.NoRoute(func(c *gin.Context) {
		notFound.Respond(c, sharederrors.ErrNotFound.WithDetail("no handler for "+c.Request.URL.Path))
	})

	return router, nil
}
