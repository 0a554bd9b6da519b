package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// RequisitionsHandler serves requisition operations.
type RequisitionsHandler struct {
	requisitions *service.RequisitionService
}

// NewRequisitionsHandler constructs the handler.
func NewRequisitionsHandler(requisitions *service.RequisitionService) *RequisitionsHandler {
	return &RequisitionsHandler{requisitions: requisitions}
}

// ListByEvent handles GET /events/:id/requisitions.
func (h *RequisitionsHandler) ListByEvent(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	reqs, err := h.requisitions.ListByEvent(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRequisitionResponses(reqs))
}

// List handles GET /requisitions?eventId=.
func (h *RequisitionsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	eventID := c.Query("eventId")
	if eventID == "" {
		return apperrors.NewValidationError("eventId query parameter is required", nil)
	}
	reqs, err := h.requisitions.ListByEvent(c.Context(), actor, eventID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRequisitionResponses(reqs))
}

// Get handles GET /requisitions/:id.
func (h *RequisitionsHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	req, err := h.requisitions.Get(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRequisitionResponse(req))
}

// Create handles POST /requisitions.
func (h *RequisitionsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateRequisitionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	created, err := h.requisitions.Create(c.Context(), actor, req.EventID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewRequisitionResponse(created))
}

// Delete handles DELETE /requisitions/:id.
func (h *RequisitionsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.requisitions.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
