// Package dashboard aggregates snapshots from the project and
// invitation apps for the website landing page and the admin panel.
package dashboard

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/apps/invitation"
	"github.com/seva-foundation/temple-backend/internal/apps/project"
	"github.com/seva-foundation/temple-backend/internal/dto"
)

type Handler struct {
	projects    *project.Service
	invitations *invitation.Service
}

func NewHandler(projects *project.Service, invitations *invitation.Service) *Handler {
	return &Handler{projects: projects, invitations: invitations}
}

// Website returns the public landing snapshot: a handful of active
// projects and the upcoming events.
func (h *Handler) Website(c *fiber.Ctx) error {
	projects, err := h.projects.ActiveSnapshot(5)
	if err != nil {
		slog.Error("dashboard project snapshot failed", "module", "dashboard", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error building dashboard")
	}

	upcoming, err := h.invitations.Upcoming(10)
	if err != nil {
		slog.Error("dashboard upcoming events failed", "module", "dashboard", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error building dashboard")
	}

	return dto.Success(c, "", fiber.Map{
		"activeProjects": projects,
		"upcomingEvents": upcoming,
	})
}

// Admin returns status counts for the admin overview.
func (h *Handler) Admin(c *fiber.Ctx) error {
	projectCounts, err := h.projects.CountByStatus()
	if err != nil {
		slog.Error("dashboard project counts failed", "module", "dashboard", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error building dashboard")
	}

	invitationCounts, err := h.invitations.CountByStatus()
	if err != nil {
		slog.Error("dashboard invitation counts failed", "module", "dashboard", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error building dashboard")
	}

	return dto.Success(c, "", fiber.Map{
		"projects":    fiber.Map{"byStatus": projectCounts},
		"invitations": fiber.Map{"byStatus": invitationCounts},
	})
}
