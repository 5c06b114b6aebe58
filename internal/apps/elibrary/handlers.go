package elibrary

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
	var req CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	e, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create library entry failed", "module", "elibrary", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating library entry")
	}
	return dto.Created(c, "Library entry created successfully", fiber.Map{"entry": e})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit,
		c.Query("category"), c.Query("format"), c.Query("language"), c.Query("search"), includeInactive)
	if err != nil {
		slog.Error("list library entries failed", "module", "elibrary", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching library entries")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	e, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Library entry not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching library entry")
	}
	return dto.Success(c, "", fiber.Map{"entry": e})
}

// Download bumps the counter and returns the entry with its file path;
// the client follows up on the static /uploads mount.
func (h *Handler) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	e, err := h.service.RecordDownload(id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Library entry not found")
		}
		slog.Error("record download failed", "module", "elibrary", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error recording download")
	}
	return dto.Success(c, "", fiber.Map{"entry": e})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	var req UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	e, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Library entry not found")
		}
		slog.Error("update library entry failed", "module", "elibrary", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating library entry")
	}
	return dto.Success(c, "Library entry updated successfully", fiber.Map{"entry": e})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid entry ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Library entry not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting library entry")
	}
	return dto.Success(c, "Library entry deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
