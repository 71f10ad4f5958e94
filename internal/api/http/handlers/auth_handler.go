package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reporting-service/internal/api/dto"
	"github.com/spec-kit/reporting-service/internal/auth"
	"github.com/spec-kit/reporting-service/internal/service"
	apperrors "github.com/spec-kit/reporting-service/pkg/util"
)

// AuthHandler exposes registration, login, logout, and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		StudentID: req.StudentID,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    dto.FromUser(user),
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Identifier, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.FromUser(user),
	})
}

// Logout handles POST /api/logout. The token is revoked server-side until
// its natural expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("access token required")
	}
	if err := h.auth.Logout(c.Context(), identity.TokenID, identity.ExpiresAt); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Profile handles GET /api/user/profile, echoing the token identity.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("access token required")
	}
	return c.JSON(fiber.Map{
		"user": dto.UserResponse{
			ID:        identity.UserID,
			Name:      identity.Name,
			Role:      identity.Role,
			Email:     identity.Email,
			StudentID: identity.StudentID,
		},
	})
}
