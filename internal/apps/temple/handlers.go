package temple

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
	var req CreateInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	info, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create temple section failed", "module", "temple", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating temple section")
	}
	return dto.Created(c, "Temple section created successfully", fiber.Map{"temple": info})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit, c.Query("category"), includeInactive)
	if err != nil {
		slog.Error("list temple sections failed", "module", "temple", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching temple sections")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) ByCategory(c *fiber.Ctx) error {
	sections, err := h.service.ByCategory(c.Params("category"))
	if err != nil {
		slog.Error("temple sections by category failed", "module", "temple", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching temple sections")
	}
	return dto.Success(c, "", fiber.Map{"sections": sections})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid section ID")
	}

	info, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Temple section not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching temple section")
	}
	return dto.Success(c, "", fiber.Map{"temple": info})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid section ID")
	}

	var req UpdateInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	info, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Temple section not found")
		}
		slog.Error("update temple section failed", "module", "temple", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating temple section")
	}
	return dto.Success(c, "Temple section updated successfully", fiber.Map{"temple": info})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid section ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrSectionNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Temple section not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting temple section")
	}
	return dto.Success(c, "Temple section deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
