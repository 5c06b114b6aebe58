package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/seva-foundation/temple-backend/internal/apps"
	"github.com/seva-foundation/temple-backend/internal/apps/astrology"
	"github.com/seva-foundation/temple-backend/internal/apps/dashboard"
	"github.com/seva-foundation/temple-backend/internal/apps/donation"
	"github.com/seva-foundation/temple-backend/internal/apps/elibrary"
	"github.com/seva-foundation/temple-backend/internal/apps/eventcategory"
	"github.com/seva-foundation/temple-backend/internal/apps/governance"
	"github.com/seva-foundation/temple-backend/internal/apps/invitation"
	"github.com/seva-foundation/temple-backend/internal/apps/media"
	"github.com/seva-foundation/temple-backend/internal/apps/project"
	"github.com/seva-foundation/temple-backend/internal/apps/team"
	"github.com/seva-foundation/temple-backend/internal/apps/temple"
	"github.com/seva-foundation/temple-backend/internal/apps/volunteer"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/database"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/handlers"
	"github.com/seva-foundation/temple-backend/internal/logging"
	"github.com/seva-foundation/temple-backend/internal/middleware"
	"github.com/seva-foundation/temple-backend/internal/payment"
	"github.com/seva-foundation/temple-backend/internal/routes"
	"github.com/seva-foundation/temple-backend/internal/services"
	"github.com/seva-foundation/temple-backend/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.RefreshSecret == "" {
		slog.Error("REFRESH_TOKEN_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.MigrateShared(db); err != nil {
		slog.Error("shared migration failed", "error", err)
		os.Exit(1)
	}

	// Database log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewFanoutHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cleanupDone)

	// Upload storage
	store, err := storage.New(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		slog.Error("upload storage init failed", "error", err)
		os.Exit(1)
	}

	// Payment gateway (optional; the donation flow degrades without it)
	var gateway payment.GatewayClient
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		gateway = payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		slog.Warn("razorpay keys not configured, gateway orders disabled")
	}

	// Services
	authService := services.NewAuthService(db, cfg)

	// Apps
	projectApp := project.New(db)
	invitationApp := invitation.New(db)
	mediaApp := media.New(db, store)
	plugins := []apps.Plugin{
		donation.New(db, gateway, cfg),
		volunteer.New(db),
		temple.New(db),
		projectApp,
		team.New(db),
		mediaApp,
		governance.New(db),
		elibrary.New(db, store),
		invitationApp,
		eventcategory.New(db),
		astrology.New(db),
		dashboard.New(projectApp.Service(), invitationApp.Service()),
	}

	// Migrate plugin models
	for _, p := range plugins {
		if models := p.Models(); len(models) > 0 {
			if err := database.MigrateModels(db, models); err != nil {
				slog.Error("plugin migration failed", "plugin", p.ID(), "error", err)
				os.Exit(1)
			}
			slog.Info("plugin migrated", "plugin", p.ID(), "models", len(models))
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)
	uploadHandler := handlers.NewUploadHandler(store, mediaApp.Service())

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.MaxUploadSize) + 1024*1024,
		ErrorHandler: errorHandler,
	})

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
	routes.Setup(app, cfg, db, authHandler, healthHandler, uploadHandler, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	// A listen failure runs the same teardown path as a signal so the log
	// handler flushes and the pool closes.
	select {
	case err := <-serverErr:
		slog.Error("server failed", "error", err)
	case <-quit:
		slog.Info("shutting down server...")
	}

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

// errorHandler converts errors that escape the handlers into the common
// response envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled request error", "path", c.Path(), "error", err)
	}
	return dto.Error(c, code, message)
}
