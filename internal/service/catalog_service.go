package service

import (
	"context"
	"strings"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// CatalogService manages the shared operator and service catalogs used by
// communication items. Any authenticated user may maintain them.
type CatalogService struct {
	operators repository.OperatorRepository
	services  repository.ServiceRepository
}

// NewCatalogService builds the service.
func NewCatalogService(operators repository.OperatorRepository, services repository.ServiceRepository) *CatalogService {
	return &CatalogService{operators: operators, services: services}
}

// ListOperators returns all operators ordered by name.
func (s *CatalogService) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	return s.operators.List(ctx)
}

// CreateOperator registers an operator.
func (s *CatalogService) CreateOperator(ctx context.Context, name string) (*domain.Operator, error) {
	op := &domain.Operator{Name: strings.TrimSpace(name)}
	if op.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if err := s.operators.Create(ctx, op); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("operator name already in use", map[string]any{"name": op.Name})
		}
		return nil, err
	}
	return op, nil
}

// UpdateOperator renames an operator.
func (s *CatalogService) UpdateOperator(ctx context.Context, id, name string) (*domain.Operator, error) {
	op, err := s.operators.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	op.Name = trimmed
	if err := s.operators.Update(ctx, op); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("operator name already in use", map[string]any{"name": op.Name})
		}
		return nil, err
	}
	return op, nil
}

// DeleteOperator removes an operator.
func (s *CatalogService) DeleteOperator(ctx context.Context, id string) error {
	return s.operators.Delete(ctx, id)
}

// ListServices returns all services ordered by name.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

// CreateService registers a service type.
func (s *CatalogService) CreateService(ctx context.Context, name string, description *string) (*domain.Service, error) {
	svc := &domain.Service{Name: strings.TrimSpace(name), Description: description}
	if svc.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if err := s.services.Create(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("service name already in use", map[string]any{"name": svc.Name})
		}
		return nil, err
	}
	return svc, nil
}

// UpdateService applies a partial update to a service type.
func (s *CatalogService) UpdateService(ctx context.Context, id string, name *string, description *string) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("name is required", nil)
		}
		svc.Name = trimmed
	}
	if description != nil {
		svc.Description = description
	}
	if err := s.services.Update(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("service name already in use", map[string]any{"name": svc.Name})
		}
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a service type.
func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}
