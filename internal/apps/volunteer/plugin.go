package volunteer

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
	return "volunteer"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Volunteer{}, &Certificate{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	// Applications come in from the public site; everything else is
	// admin-side management.
	pub := public.Group("/volunteer")
	pub.Post("/apply", a.handler.Create)

	adm := admin.Group("/volunteer")
	adm.Get("/", a.handler.List)
	adm.Get("/:id", a.handler.Get)
	adm.Put("/:id", a.handler.Update)
	adm.Patch("/:id/status", a.handler.UpdateStatus)
	adm.Delete("/:id", a.handler.Delete)
	adm.Post("/:id/certificates", a.handler.AddCertificate)
	adm.Get("/:id/certificates", a.handler.ListCertificates)
	adm.Delete("/certificates/:certId", a.handler.DeleteCertificate)
}
