package donation

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
	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.Create(&req)
	if err != nil {
		slog.Error("create donation failed", "module", "donation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error creating donation")
	}
	return dto.Created(c, "Donation recorded successfully", fiber.Map{"donation": d})
}

func (h *Handler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	resp, err := h.service.List(page, limit,
		c.Query("category"), c.Query("status"), c.Query("paymentMethod"), c.Query("search"))
	if err != nil {
		slog.Error("list donations failed", "module", "donation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching donations")
	}
	return dto.Success(c, "", resp)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid donation ID")
	}

	d, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrDonationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching donation")
	}
	return dto.Success(c, "", fiber.Map{"donation": d})
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid donation ID")
	}

	var req UpdateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, ErrDonationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		slog.Error("update donation failed", "module", "donation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error updating donation")
	}
	return dto.Success(c, "Donation updated successfully", fiber.Map{"donation": d})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid donation ID")
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrDonationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		return dto.Error(c, fiber.StatusInternalServerError, "Error deleting donation")
	}
	return dto.Success(c, "Donation deleted successfully", nil)
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	order, err := h.service.CreateOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDonationNotFound):
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		case errors.Is(err, ErrAmountRequired):
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, ErrGatewayNotConfigured):
			return dto.Error(c, fiber.StatusServiceUnavailable, "Payment gateway is not configured")
		default:
			slog.Error("gateway order creation failed", "module", "donation", "error", err)
			return dto.Error(c, fiber.StatusBadGateway, "Failed to create payment order")
		}
	}
	return dto.Success(c, "Order created successfully", order)
}

func (h *Handler) VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.VerifyPayment(&req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDonationNotFound):
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		case errors.Is(err, ErrSignatureMismatch):
			return dto.Error(c, fiber.StatusBadRequest, "Payment verification failed")
		default:
			slog.Error("payment verification failed", "module", "donation", "error", err)
			return dto.Error(c, fiber.StatusInternalServerError, "Error verifying payment")
		}
	}
	return dto.Success(c, "Payment verified successfully", fiber.Map{"donation": d})
}

func (h *Handler) GenerateQR(c *fiber.Ctx) error {
	var req GenerateQRRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	resp, err := h.service.GenerateQR(&req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDonationNotFound):
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		case errors.Is(err, ErrAmountRequired), errors.Is(err, ErrAlreadyCompleted):
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUPINotConfigured):
			return dto.Error(c, fiber.StatusServiceUnavailable, "UPI payments are not configured")
		default:
			slog.Error("QR generation failed", "module", "donation", "error", err)
			return dto.Error(c, fiber.StatusInternalServerError, "Error generating QR code")
		}
	}
	return dto.Success(c, "QR code generated successfully", resp)
}

func (h *Handler) CompleteUPI(c *fiber.Ctx) error {
	var req CompleteUPIRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	d, err := h.service.CompleteUPI(&req)
	if err != nil {
		if errors.Is(err, ErrDonationNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "Donation not found")
		}
		slog.Error("UPI completion failed", "module", "donation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error completing UPI payment")
	}
	return dto.Success(c, "UPI payment marked as completed", fiber.Map{"donation": d})
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		slog.Error("payment summary failed", "module", "donation", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error building payment summary")
	}
	return dto.Success(c, "", summary)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
