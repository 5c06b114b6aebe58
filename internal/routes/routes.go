package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/seva-foundation/temple-backend/internal/apps"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/handlers"
	"github.com/seva-foundation/temple-backend/internal/middleware"
	"github.com/seva-foundation/temple-backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	uploadHandler *handlers.UploadHandler,
	plugins []apps.Plugin,
) {
	// Uploaded files are served directly off the disk tree.
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 300 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               300,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth endpoints get the JWT guard individually so the
	// public ones above stay open.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/profile", middleware.JWTProtected(cfg), authHandler.Profile)

	// Uploads require a logged-in user; deletion is admin-only below.
	uploads := api.Group("/upload", middleware.JWTProtected(cfg), middleware.LoadUser(db))
	uploads.Post("/photo", uploadHandler.UploadPhoto)
	uploads.Post("/photos", uploadHandler.UploadPhotos)
	uploads.Post("/file", uploadHandler.UploadFile)
	uploads.Get("/:id", uploadHandler.FileInfo)

	// Admin panel: JWT + active user + elevated role.
	admin := api.Group("/admin",
		middleware.JWTProtected(cfg),
		middleware.LoadUser(db),
		middleware.RequireRoles(cfg, models.RoleAdmin, models.RoleTrustee),
	)
	admin.Delete("/upload/:id", uploadHandler.Delete)

	// Public submissions and reads register on /api, management on
	// /api/admin.
	for _, p := range plugins {
		p.RegisterRoutes(api, admin)
	}
}
