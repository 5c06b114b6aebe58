package project

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
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	p, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create project failed", "module", "project", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating project")
	}
	return dto.Created(c, "Project created successfully", fiber.Map{"project": p})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	includeInactive := c.Query("includeInactive") == "true"

	resp, err := h.service.List(page, limit,
		c.Query("category"), c.Query("status"), c.Query("search"), includeInactive)
	if err != nil {
		slog.Error("list projects failed", "module", "project", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching projects")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	p, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching project")
	}
	return dto.Success(c, "", fiber.Map{"project": p})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	p, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Project not found")
		}
		slog.Error("update project failed", "module", "project", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating project")
	}
	return dto.Success(c, "Project updated successfully", fiber.Map{"project": p})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Project not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting project")
	}
	return dto.Success(c, "Project deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
