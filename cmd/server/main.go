package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/fitmantra/fitmantra-backend/internal/ai"
	"github.com/fitmantra/fitmantra-backend/internal/cart"
	"github.com/fitmantra/fitmantra-backend/internal/checkout"
	"github.com/fitmantra/fitmantra-backend/internal/coach"
	"github.com/fitmantra/fitmantra-backend/internal/config"
	"github.com/fitmantra/fitmantra-backend/internal/database"
	"github.com/fitmantra/fitmantra-backend/internal/entitlement"
	"github.com/fitmantra/fitmantra-backend/internal/handlers"
	"github.com/fitmantra/fitmantra-backend/internal/logging"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/fitmantra/fitmantra-backend/internal/routes"
	"github.com/fitmantra/fitmantra-backend/internal/services"
	"github.com/fitmantra/fitmantra-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Feature-access registry: built-in defaults, optional file override
	registry := entitlement.DefaultRegistry()
	if cfg.FeaturesConfigPath != "" {
		var err error
		registry, err = entitlement.LoadFromFile(cfg.FeaturesConfigPath)
		if err != nil {
			slog.Error("failed to load features config", "path", cfg.FeaturesConfigPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("feature registry loaded", "features", len(registry.Keys()))

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// State store + engines
	kv := store.NewGormStore(database.DB)
	entitlementService := entitlement.NewService(kv, registry)
	cartService := cart.NewService(kv)
	checkoutService := checkout.NewService(checkout.NewGormRecorder(database.DB), cartService, entitlementService)

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	coachService := coach.NewService(ai.NewClient(cfg))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()
	catalogHandler := handlers.NewCatalogHandler()
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	subscriptionHandler := handlers.NewSubscriptionHandler(checkoutService, entitlementService)
	coachHandler := handlers.NewCoachHandler(coachService, entitlementService)
	ordersHandler := handlers.NewOrdersHandler(database.DB)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler, catalogHandler,
		cartHandler, checkoutHandler, subscriptionHandler, coachHandler, ordersHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
