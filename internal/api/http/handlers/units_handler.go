package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// UnitsHandler serves unit operations.
type UnitsHandler struct {
	units *service.UnitService
}

// NewUnitsHandler constructs the handler.
func NewUnitsHandler(units *service.UnitService) *UnitsHandler {
	return &UnitsHandler{units: units}
}

// List handles GET /units.
func (h *UnitsHandler) List(c *fiber.Ctx) error {
	units, err := h.units.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUnitResponses(units))
}

// Create handles POST /units.
func (h *UnitsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	unit, err := h.units.Create(c.Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewUnitResponse(unit))
}
