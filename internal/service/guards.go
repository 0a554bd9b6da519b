package service

import (
	"github.com/spec-kit/event-budget-service/internal/auth"
	"github.com/spec-kit/event-budget-service/internal/domain"
	apperrors "github.com/spec-kit/event-budget-service/pkg/util"
)

// guardEventRead enforces the shared visibility rule for anything hanging
// off an event. Every resource service funnels through these two guards so
// the policy lives in exactly one place.
func guardEventRead(actor *domain.User, event *domain.Event) error {
	if !auth.CanRead(actor, event.UnitID, event.UserID) {
		return apperrors.NewForbidden("access denied: event belongs to another unit")
	}
	return nil
}

// guardEventWrite enforces the mutation rule: observers are read-only,
// scope must match, and a COMPLETED event only accepts changes from a
// MASTER.
func guardEventWrite(actor *domain.User, event *domain.Event) error {
	if actor != nil && actor.Role == domain.RoleObserver {
		return apperrors.NewForbidden("observers have read-only access")
	}
	if !auth.CanMutate(actor, event.UnitID, event.UserID) {
		return apperrors.NewForbidden("access denied: event belongs to another unit")
	}
	if event.Status == domain.EventStatusCompleted && !auth.CanMutateCompleted(actor) {
		return apperrors.NewForbidden("event is completed; only a MASTER can modify it")
	}
	return nil
}
