package astrology

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
	return "astrology"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Consultation{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	// Bookings come from the public site; management is admin-side.
	pub := public.Group("/Astrology")
	pub.Post("/", a.handler.Create)

	adm := admin.Group("/Astrology")
	adm.Get("/", a.handler.List)
	adm.Get("/:id", a.handler.Get)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
