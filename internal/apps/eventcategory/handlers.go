package eventcategory

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
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	cat, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("create category failed", "module", "eventcategory", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating category")
	}
	return dto.Created(c, "Category created successfully", fiber.Map{"category": cat})
}

func (h *Handler) List(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"

	categories, err := h.service.List(includeInactive)
	if err != nil {
		slog.Error("list categories failed", "module", "eventcategory", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching categories")
	}
	return dto.Success(c, "", fiber.Map{"categories": categories})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	cat, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching category")
	}
	return dto.Success(c, "", fiber.Map{"category": cat})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	cat, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			return dto.Error(c, fiber.StatusNotFound, "Category not found")
		case errors.Is(err, ErrDuplicateName):
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			slog.Error("update category failed", "module", "eventcategory", "error", err)
			return dto.Error(c, fiber.StatusInternalServerError, "Error updating category")
		}
	}
	return dto.Success(c, "Category updated successfully", fiber.Map{"category": cat})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting category")
	}
	return dto.Success(c, "Category deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
