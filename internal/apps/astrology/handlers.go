package astrology

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
	var req CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	con, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create consultation failed", "module", "astrology", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error booking consultation")
	}
	return dto.Created(c, "Consultation booked successfully", fiber.Map{"consultation": con})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	resp, err := h.service.List(page, limit, c.Query("status"), c.Query("search"))
	if err != nil {
		slog.Error("list consultations failed", "module", "astrology", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching consultations")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid consultation ID")
	}

	con, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrConsultationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Consultation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching consultation")
	}
	return dto.Success(c, "", fiber.Map{"consultation": con})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid consultation ID")
	}

	var req UpdateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	con, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrConsultationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Consultation not found")
		}
		slog.Error("update consultation failed", "module", "astrology", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating consultation")
	}
	return dto.Success(c, "Consultation updated successfully", fiber.Map{"consultation": con})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid consultation ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrConsultationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Consultation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting consultation")
	}
	return dto.Success(c, "Consultation deleted successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
