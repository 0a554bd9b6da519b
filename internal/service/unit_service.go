package service

import (
	"context"
	"strings"

	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// UnitService manages organizational units.
type UnitService struct {
	units repository.UnitRepository
}

// NewUnitService builds the service.
func NewUnitService(units repository.UnitRepository) *UnitService {
	return &UnitService{units: units}
}

// List returns all units. Any authenticated user may read them, they feed
// the assignment dropdowns.
func (s *UnitService) List(ctx context.Context) ([]domain.Unit, error) {
	return s.units.List(ctx)
}

// Create registers a unit. MASTER only.
func (s *UnitService) Create(ctx context.Context, actor *domain.User, name string) (*domain.Unit, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	unit := &domain.Unit{Name: strings.TrimSpace(name)}
	if unit.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if err := s.units.Create(ctx, unit); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("unit name already in use", map[string]any{"name": unit.Name})
		}
		return nil, err
	}
	return unit, nil
}
