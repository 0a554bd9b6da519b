package service

import (
	"context"
	"strings"

	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/domain"
	"github.com/spec-kit/event-budget-service/internal/repository"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// UserService covers MASTER-only account management plus self-service
// profile updates.
type UserService struct {
	users      repository.UserRepository
	units      repository.UnitRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, units repository.UnitRepository, bcryptCost int) *UserService {
	return &UserService{users: users, units: units, bcryptCost: bcryptCost}
}

// UserCreateInput describes account creation payload.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	UnitID   *string
}

// UserUpdateInput describes a partial account update.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
	UnitID   *string
}

// ProfileUpdateInput describes the self-service subset.
type ProfileUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// List returns all accounts. MASTER only.
func (s *UserService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Get returns one account. MASTER only.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Create provisions a new account. MASTER only.
func (s *UserService) Create(ctx context.Context, actor *domain.User, input UserCreateInput) (*domain.User, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	if !domain.ValidRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": input.Role})
	}
	if input.UnitID != nil {
		if _, err := s.units.GetByID(ctx, *input.UnitID); err != nil {
			return nil, apperrors.NewValidationError("unit does not exist", map[string]any{"unitId": *input.UnitID})
		}
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
		UnitID:       input.UnitID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("email already in use", map[string]any{"email": user.Email})
		}
		return nil, err
	}
	return user, nil
}

// Update modifies an account. MASTER only.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, input UserUpdateInput) (*domain.User, error) {
	if err := requireMaster(actor); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": *input.Role})
		}
		user.Role = *input.Role
	}
	if input.UnitID != nil {
		if _, err := s.units.GetByID(ctx, *input.UnitID); err != nil {
			return nil, apperrors.NewValidationError("unit does not exist", map[string]any{"unitId": *input.UnitID})
		}
		user.UnitID = input.UnitID
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("email already in use", map[string]any{"email": user.Email})
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile lets any authenticated user edit their own record.
func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.User, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewValidationError("email already in use", map[string]any{"email": user.Email})
		}
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Self-deletion always fails, whoever asks.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor != nil && actor.ID == id {
		return apperrors.NewValidationError("cannot delete yourself", nil)
	}
	if err := requireMaster(actor); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

func requireMaster(actor *domain.User) error {
	if actor == nil || actor.Role != domain.RoleMaster {
		return apperrors.NewForbidden("access denied: MASTER role required")
	}
	return nil
}
