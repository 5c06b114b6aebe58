package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/middleware"
	"github.com/seva-foundation/temple-backend/internal/services"
	"github.com/seva-foundation/temple-backend/internal/validation"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return dto.Error(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("registration failed", "module", "auth", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error registering user")
	}
	return dto.Created(c, "User registered successfully", resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return dto.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		slog.Error("login failed", "module", "auth", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error logging in")
	}
	return dto.Success(c, "Login successful", resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := validation.Struct(req); errs != nil {
		return dto.ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errs)
	}

	tokens, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return dto.Error(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
		}
		slog.Error("token refresh failed", "module", "auth", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error refreshing token")
	}
	return dto.Success(c, "Token refreshed successfully", tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := middleware.TokenUserID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusUnauthorized, "Invalid token")
	}

	if err := h.service.Logout(userID); err != nil {
		slog.Error("logout failed", "module", "auth", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error logging out")
	}
	return dto.Success(c, "Logged out successfully", nil)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, err := middleware.TokenUserID(c)
	if err != nil {
		return dto.Error(c, fiber.StatusUnauthorized, "Invalid token")
	}

	profile, err := h.service.Profile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return dto.Error(c, fiber.StatusNotFound, "User not found")
		}
		slog.Error("profile lookup failed", "module", "auth", "error", err)
		return dto.Error(c, fiber.StatusInternalServerError, "Error fetching profile")
	}
	return dto.Success(c, "", fiber.Map{"user": profile})
}
