package auth

import "github.com/spec-kit/event-budget-service/internal/domain"

// Policy centralizes the role/unit visibility rules applied by every
// resource service. A resource is identified by the unit and owner of its
// enclosing event: non-MASTER actors reach only resources in their own
// unit, and unit-less actors fall back to resources they created.

// CanRead reports whether the actor may see a resource scoped by
// unit and owner.
func CanRead(actor *domain.User, unitID *string, ownerID string) bool {
	if actor == nil {
		return false
	}
	if actor.Role == domain.RoleMaster {
		return true
	}
	if actor.UnitID != nil {
		return unitID != nil && *unitID == *actor.UnitID
	}
	return ownerID == actor.ID
}

// CanMutate reports whether the actor may create, update, or delete a
// resource scoped by unit and owner. OBSERVER is read-only.
func CanMutate(actor *domain.User, unitID *string, ownerID string) bool {
	if actor == nil || actor.Role == domain.RoleObserver {
		return false
	}
	return CanRead(actor, unitID, ownerID)
}

// CanTransitionStatus reports whether the actor's role may drive event
// lifecycle transitions at all.
func CanTransitionStatus(actor *domain.User) bool {
	if actor == nil {
		return false
	}
	return actor.Role == domain.RoleMaster || actor.Role == domain.RoleManager
}

// CanMutateCompleted reports whether the actor may modify resources under
// an event that has reached COMPLETED.
func CanMutateCompleted(actor *domain.User) bool {
	return actor != nil && actor.Role == domain.RoleMaster
}
