package media

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/storage"
	"gorm.io/gorm"
)

type App struct {
	service *Service
	handler *Handler
}

func New(db *gorm.DB, store *storage.Storage) *App {
	service := NewService(db, store)
	return &App{service: service, handler: NewHandler(service)}
}

func (a *App) ID() string {
	return "media"
}

// Service exposes the media service so the upload endpoints can create
// rows for files they receive.
func (a *App) Service() *Service {
	return a.service
}

func (a *App) Models() []interface{} {
	return []interface{}{&Media{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	pub := public.Group("/media")
	pub.Get("/", a.handler.List)
	pub.Get("/:id", a.handler.Get)

	adm := admin.Group("/media")
	adm.Post("/", a.handler.Create)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
