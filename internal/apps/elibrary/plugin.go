package elibrary

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/storage"
	"gorm.io/gorm"
)

type App struct {
	handler *Handler
}

func New(db *gorm.DB, store *storage.Storage) *App {
	return &App{handler: NewHandler(NewService(db, store))}
}

func (a *App) ID() string {
	return "elibrary"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Entry{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	pub := public.Group("/elibrary")
	pub.Get("/", a.handler.List)
	pub.Get("/:id", a.handler.Get)
	pub.Post("/:id/download", a.handler.Download)

	adm := admin.Group("/elibrary")
	adm.Post("/", a.handler.Create)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
