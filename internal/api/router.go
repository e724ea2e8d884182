package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/precify/pricing-api/internal/api/handler"
	"github.com/precify/pricing-api/internal/api/middleware"
	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/service"
	mongodb "github.com/precify/pricing-api/internal/infrastructure/db/mongo"
	redisdb "github.com/precify/pricing-api/internal/infrastructure/db/redis"
	"github.com/precify/pricing-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("pricing"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	locationRepo := mongodb.NewLocationRepository(db)

	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)
	catalogService := service.NewCatalogService(productRepo, locationRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authRequired := middleware.Auth(tokens)

	var limiter middleware.AttemptLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb, cfg.LoginLimit.Attempts, cfg.LoginLimit.Window)
	}

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(limiter, log))

	// --- User management (admin only) ---
	e.POST("/users", userHandler.Create, authRequired, middleware.RBAC(domain.RoleAdmin))
	e.GET("/users", userHandler.List, authRequired, middleware.RBAC(domain.RoleAdmin))
	e.DELETE("/users/:id", userHandler.Delete, authRequired, middleware.RBAC(domain.RoleAdmin))

	// --- Catalog: reads for any authenticated identity, writes for admin/gestor ---
	e.GET("/products", catalogHandler.ListProducts, authRequired, middleware.RBAC())
	e.POST("/products", catalogHandler.CreateProduct, authRequired, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	e.GET("/locations", catalogHandler.ListLocations, authRequired, middleware.RBAC())
	e.POST("/locations", catalogHandler.CreateLocation, authRequired, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
