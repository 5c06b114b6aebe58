package team

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
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	m, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create team member failed", "module", "team", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating team member")
	}
	return dto.Created(c, "Team member created successfully", fiber.Map{"member": m})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit, c.Query("department"), c.Query("search"), includeInactive)
	if err != nil {
		slog.Error("list team members failed", "module", "team", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching team members")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	m, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Team member not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching team member")
	}
	return dto.Success(c, "", fiber.Map{"member": m})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	var req UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	m, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Team member not found")
		}
		slog.Error("update team member failed", "module", "team", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating team member")
	}
	return dto.Success(c, "Team member updated successfully", fiber.Map{"member": m})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid member ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Team member not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting team member")
	}
	return dto.Success(c, "Team member deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
