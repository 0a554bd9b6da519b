package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// CommunicationsHandler serves communication item operations.
type CommunicationsHandler struct {
	communications *service.CommunicationService
}

// NewCommunicationsHandler constructs the handler.
func NewCommunicationsHandler(communications *service.CommunicationService) *CommunicationsHandler {
	return &CommunicationsHandler{communications: communications}
}

// ListByEvent handles GET /events/:id/communications.
func (h *CommunicationsHandler) ListByEvent(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	items, err := h.communications.ListByEvent(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCommunicationResponses(items))
}

// List handles GET /communications?eventId=.
func (h *CommunicationsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	eventID := c.Query("eventId")
	if eventID == "" {
		return apperrors.NewValidationError("eventId query parameter is required", nil)
	}
	items, err := h.communications.ListByEvent(c.Context(), actor, eventID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCommunicationResponses(items))
}

// Create handles POST /communications.
func (h *CommunicationsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateCommunicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item, err := h.communications.Create(c.Context(), actor, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCommunicationResponse(item))
}

// Update handles PUT /communications/:id.
func (h *CommunicationsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateCommunicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item, err := h.communications.Update(c.Context(), actor, c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCommunicationResponse(item))
}

// Delete handles DELETE /communications/:id.
func (h *CommunicationsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.communications.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
