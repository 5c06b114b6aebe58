package governance

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type App struct {
	handler *Handler
}

func New(db *gorm.DB) *App {
	return &App{handler: NewHandler(NewService(db))}
}

func (a *App) ID() string {
	return "governance"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Document{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	pub := public.Group("/governance")
	pub.Get("/", a.handler.List)
	pub.Get("/:id", a.handler.Get)

	adm := admin.Group("/governance")
	adm.Post("/", a.handler.Create)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
