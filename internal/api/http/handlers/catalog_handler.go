package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-budget-service/internal/api/dto"
	"github.com/spec-kit/event-budget-service/internal/service"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// CatalogHandler serves the operator and service catalogs.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListOperators handles GET /operators.
func (h *CatalogHandler) ListOperators(c *fiber.Ctx) error {
	ops, err := h.catalog.ListOperators(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOperatorResponses(ops))
}

// CreateOperator handles POST /operators.
func (h *CatalogHandler) CreateOperator(c *fiber.Ctx) error {
	var req dto.CreateOperatorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	op, err := h.catalog.CreateOperator(c.Context(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewOperatorResponse(op))
}

// UpdateOperator handles PUT /operators/:id.
func (h *CatalogHandler) UpdateOperator(c *fiber.Ctx) error {
	var req dto.UpdateOperatorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	op, err := h.catalog.UpdateOperator(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOperatorResponse(op))
}

// DeleteOperator handles DELETE /operators/:id.
func (h *CatalogHandler) DeleteOperator(c *fiber.Ctx) error {
	if err := h.catalog.DeleteOperator(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListServices handles GET /services.
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	svcs, err := h.catalog.ListServices(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponses(svcs))
}

// CreateService handles POST /services.
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	svc, err := h.catalog.CreateService(c.Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewServiceResponse(svc))
}

// UpdateService handles PUT /services/:id.
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	svc, err := h.catalog.UpdateService(c.Context(), c.Params("id"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponse(svc))
}

// DeleteService handles DELETE /services/:id.
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.catalog.DeleteService(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
