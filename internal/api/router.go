package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/adminpanel/rbac-directory/internal/api/handler"
	"github.com/adminpanel/rbac-directory/internal/api/middleware"
	"github.com/adminpanel/rbac-directory/internal/core/ports"
	"github.com/adminpanel/rbac-directory/internal/infrastructure/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Reads are public; mutations require an authenticated admin token.
func NewRouter(
	svc ports.DirectoryService,
	catalog ports.PermissionProvider,
	notifier ports.Notifier,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.JWTSecret, cfg.TokenTTL)
	userHandler := handler.NewUserHandler(svc, notifier)
	roleHandler := handler.NewRoleHandler(svc, notifier)
	catalogHandler := handler.NewCatalogHandler(catalog)
	statsHandler := handler.NewStatsHandler(svc)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(handler.AdminRole)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create, authRequired, adminOnly)
	e.PUT("/users/:id", userHandler.Update, authRequired, adminOnly)
	e.DELETE("/users/:id", userHandler.Delete, authRequired, adminOnly)

	// --- Roles ---
	e.GET("/roles", roleHandler.List)
	e.POST("/roles", roleHandler.Create, authRequired, adminOnly)
	e.PUT("/roles/:id", roleHandler.Update, authRequired, adminOnly)
	e.DELETE("/roles/:id", roleHandler.Delete, authRequired, adminOnly)

	// --- Catalog & stats ---
	e.GET("/permissions", catalogHandler.List)
	e.GET("/stats", statsHandler.Summary)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
