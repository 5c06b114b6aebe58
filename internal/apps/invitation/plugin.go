package invitation

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type App struct {
	service *Service
	handler *Handler
}

func New(db *gorm.DB) *App {
	service := NewService(db)
	return &App{service: service, handler: NewHandler(service)}
}

func (a *App) ID() string {
	return "invitation"
}

// Service exposes the invitation service for cross-app reads (dashboard).
func (a *App) Service() *Service {
	return a.service
}

func (a *App) Models() []interface{} {
	return []interface{}{&Invitation{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	pub := public.Group("/invitation")
	pub.Get("/upcoming", a.handler.Upcoming)
	pub.Get("/", a.handler.List)
	pub.Get("/:id", a.handler.Get)

	adm := admin.Group("/invitation")
	adm.Post("/", a.handler.Create)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
