package temple

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
	return "temple"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Info{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	pub := public.Group("/temple")
	pub.Get("/", a.handler.List)
	pub.Get("/category/:category", a.handler.ByCategory)
	pub.Get("/:id", a.handler.Get)

	adm := admin.Group("/temple")
	adm.Post("/", a.handler.Create)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
