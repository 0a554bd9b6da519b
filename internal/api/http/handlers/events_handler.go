package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// EventsHandler serves event CRUD and detail views.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs the handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// List handles GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	events, err := h.events.List(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponses(events))
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	event, txs, financials, err := h.events.GetDetail(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventDetailResponse(event, txs, financials))
}

// Create handles POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	event, err := h.events.Create(c.Context(), actor, req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewEventResponse(event))
}

// Update handles PUT /events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	event, err := h.events.Update(c.Context(), actor, c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEventResponse(event))
}

// Delete handles DELETE /events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.events.Delete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
