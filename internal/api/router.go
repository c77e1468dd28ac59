package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/account-system/internal/api/handler"
	"github.com/userhub/account-system/internal/api/middleware"
	"github.com/userhub/account-system/internal/core/domain"
	"github.com/userhub/account-system/internal/core/service"
	"github.com/userhub/account-system/internal/infrastructure/config"
	mongodb "github.com/userhub/account-system/internal/infrastructure/db/mongo"
	redisdb "github.com/userhub/account-system/internal/infrastructure/db/redis"
	"github.com/userhub/account-system/internal/pkg/hasher"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, hasher.New(cfg.BcryptCost), service.NewGenerator(0), log)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowS)*time.Second)
	generateLimit := middleware.RateLimit(limiter, "generate", log)

	// --- User routes ---
	e.POST("/users", userHandler.Create)
	e.GET("/users/generate", userHandler.Generate, generateLimit)
	e.POST("/users/batch", userHandler.Import)
	e.GET("/users/me", userHandler.Me, authMiddleware)
	e.GET("/users", userHandler.List, authMiddleware, adminOnly)
	e.GET("/users/id/:id", userHandler.GetByID, authMiddleware, adminOnly)
	e.GET("/users/:username", userHandler.GetByUsername, authMiddleware)

	// --- Observability & health probes (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
