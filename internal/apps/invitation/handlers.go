package invitation

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	inv, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create invitation failed", "module", "invitation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating invitation")
	}
	return dto.Created(c, "Invitation created successfully", fiber.Map{"invitation": inv})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit,
		c.Query("status"), c.Query("category"), c.Query("search"), includeInactive)
	if err != nil {
		slog.Error("list invitations failed", "module", "invitation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching invitations")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Upcoming(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	invitations, err := h.service.Upcoming(limit)
	if err != nil {
		slog.Error("upcoming invitations failed", "module", "invitation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching upcoming events")
	}
	return dto.Success(c, "", fiber.Map{"invitations": invitations})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid invitation ID")
	}

	inv, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Invitation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching invitation")
	}
	return dto.Success(c, "", fiber.Map{"invitation": inv})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid invitation ID")
	}

	var req UpdateInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	inv, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Invitation not found")
		}
		slog.Error("update invitation failed", "module", "invitation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating invitation")
	}
	return dto.Success(c, "Invitation updated successfully", fiber.Map{"invitation": inv})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid invitation ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Invitation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting invitation")
	}
	return dto.Success(c, "Invitation deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
