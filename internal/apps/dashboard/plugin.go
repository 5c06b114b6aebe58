package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/apps/invitation"
	"github.com/seva-foundation/temple-backend/internal/apps/project"
)

type App struct {
	handler *Handler
}

func New(projects *project.Service, invitations *invitation.Service) *App {
	return &App{handler: NewHandler(projects, invitations)}
}

func (a *App) ID() string {
	return "dashboard"
}

// Models is empty: the dashboard reads other apps' tables.
func (a *App) Models() []interface{} {
	return nil
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	public.Get("/dashboard/website", a.handler.Website)
	admin.Get("/dashboard/admin", a.handler.Admin)
}
