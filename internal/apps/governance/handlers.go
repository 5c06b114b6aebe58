package governance

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
	var req CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create governance document failed", "module", "governance", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating governance document")
	}
	return dto.Created(c, "Governance document created successfully", fiber.Map{"governance": d})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit, c.Query("category"), c.Query("search"), includeInactive)
	if err != nil {
		slog.Error("list governance documents failed", "module", "governance", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching governance documents")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	d, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Governance document not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching governance document")
	}
	return dto.Success(c, "", fiber.Map{"governance": d})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Governance document not found")
		}
		slog.Error("update governance document failed", "module", "governance", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating governance document")
	}
	return dto.Success(c, "Governance document updated successfully", fiber.Map{"governance": d})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid document ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Governance document not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting governance document")
	}
	return dto.Success(c, "Governance document deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
