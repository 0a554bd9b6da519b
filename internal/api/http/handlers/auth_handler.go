package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// AuthHandler serves login and the always-closed register endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewLoginResponse(token, expiresAt, user))
}

// Register handles POST /auth/register. It always refuses.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return h.auth.Register(c.Context())
}
