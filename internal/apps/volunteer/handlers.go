package volunteer

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
	var req CreateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	v, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create volunteer failed", "module", "volunteer", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error submitting volunteer application")
	}
	return dto.Created(c, "Volunteer application submitted successfully", fiber.Map{"volunteer": v})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	resp, err := h.service.List(page, limit,
		c.Query("status"), c.Query("availability"), c.Query("search"))
	if err != nil {
		slog.Error("list volunteers failed", "module", "volunteer", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching volunteers")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	v, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching volunteer")
	}
	return dto.Success(c, "", fiber.Map{"volunteer": v})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	var req UpdateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	v, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		slog.Error("update volunteer failed", "module", "volunteer", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating volunteer")
	}
	return dto.Success(c, "Volunteer updated successfully", fiber.Map{"volunteer": v})
}

func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	v, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		slog.Error("update volunteer status failed", "module", "volunteer", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating volunteer status")
	}
	return dto.Success(c, "Volunteer status updated successfully", fiber.Map{"volunteer": v})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting volunteer")
	}
	return dto.Success(c, "Volunteer deleted successfully", nil)
}

func (h *Handler) AddCertificate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	var req CreateCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	cert, err := h.service.AddCertificate(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrVolunteerNotFound):
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		case errors.Is(err, ErrDuplicateNumber):
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			slog.Error("create certificate failed", "module", "volunteer", "error", err)
			return dto.Error(c, fiber.StatusInternalServerError, "Error creating certificate")
		}
	}
	return dto.Created(c, "Certificate issued successfully", fiber.Map{"certificate": cert})
}

func (h *Handler) ListCertificates(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid volunteer ID")
	}

	certs, err := h.service.ListCertificates(id)
	if err != nil {
		if errors.Is(err, ErrVolunteerNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Volunteer not found")
		}
		slog.Error("list certificates failed", "module", "volunteer", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching certificates")
	}
	return dto.Success(c, "", fiber.Map{"certificates": certs})
}

func (h *Handler) DeleteCertificate(c *fiber.Ctx) error {
	certID, err := parseID(c, "certId")
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid certificate ID")
	}

	if err := h.service.DeleteCertificate(certID); err != nil {
		if errors.Is(err, ErrCertificateNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting certificate")
	}
	return dto.Success(c, "Certificate deleted successfully", nil)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
