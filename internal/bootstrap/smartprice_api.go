package bootstrap

import (
	"strings"
	"time"

	"smartprice_server/adapter/in/http"
	"smartprice_server/config"
	"smartprice_server/infra/middleware"
	"smartprice_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	// Initialize logger. LOG_LEVEL wins; otherwise debug in development.
	logLevel := logger.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = logger.LevelDebug
	}
	if cfg.LogLevel != "" {
		logLevel = logger.ParseLevel(cfg.LogLevel)
	}
	logger.Init(logger.Config{
		Level:   logLevel,
		Service: "smartprice-api",
	})

	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
		Prefork:               false,
		StrictRouting:         false,
		CaseSensitive:         false,

		ReadBufferSize:  16384,
		WriteBufferSize: 16384,

		// go-json is a drop-in replacement for encoding/json
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit:   1 * 1024 * 1024, // 1MB, chat payloads are small
		Concurrency: 256 * 1024,

		ServerHeader:       "",
		DisableDefaultDate: true,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())         // 1. Panic recovery
	app.Use(middleware.RequestID())       // 2. Request ID
	app.Use(middleware.SecurityHeaders()) // 3. Security headers
	app.Use(middleware.RequestLogger())   // 4. Request logging

	// Response compression
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// CORS. AllowCredentials:true requires explicit origins (not "*").
	allowOrigins := strings.Join(cfg.AllowedOrigins, ",")
	allowCredentials := true
	if allowOrigins == "" || allowOrigins == "*" {
		if cfg.IsProduction() {
			allowOrigins = ""
			allowCredentials = false
		} else {
			allowOrigins = "http://localhost:3000,http://localhost:5173"
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,X-Request-ID",
		ExposeHeaders:    "X-Request-ID,X-RateLimit-Limit,X-RateLimit-Remaining,X-RateLimit-Reset",
		AllowCredentials: allowCredentials,
		MaxAge:           86400,
	}))

	// Health check
	healthHandler := http.NewHealthHandlerWithDeps(deps.DB, deps.Redis, deps.MongoDB)
	healthHandler.Register(app)

	// API routes with rate limiting. The Redis sliding window coordinates
	// replicas; the in-memory limiter covers single-instance deployments.
	api := app.Group("/api/v1")

	rateWindow := time.Duration(cfg.ChatRateWindowSec) * time.Second
	if deps.Redis != nil {
		api.Use(middleware.RedisRateLimiter(deps.Redis, cfg.ChatRateLimit, rateWindow))
	} else {
		rateLimiter := middleware.NewRateLimiter(cfg.ChatRateLimit, rateWindow)
		api.Use(rateLimiter.Handler())

		depsCleanup := cleanup
		cleanup = func() {
			rateLimiter.Stop()
			depsCleanup()
		}
	}

	chatHandler := http.NewChatHandler(deps.Orchestrator, deps.Sessions, deps.Engine)
	chatHandler.Register(api)

	logger.Info("API routes registered")

	return app, cleanup, nil
}
