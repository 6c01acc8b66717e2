package services

import (
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
)

// Action is the access intent checked by the authorizer.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionManage Action = "manage" // admin-only surfaces (user management, system stats)
)

// Ownership describes who owns a resource for authorization purposes.
// A nil OwnerID with Global set marks a shared resource (global category).
type Ownership struct {
	OwnerID *string
	Global  bool
}

// OwnedBy builds an Ownership for a single user.
func OwnedBy(userID string) Ownership {
	return Ownership{OwnerID: &userID}
}

// GlobalResource is the Ownership of an ownerless, shared resource.
func GlobalResource() Ownership {
	return Ownership{Global: true}
}

// AuthorizerSvc is the single authorization predicate consumed by every
// resource service. Implementations must be pure: no I/O, no state.
type AuthorizerSvc interface {
	// CanAccess decides whether the principal may perform action on a resource
	// with the given ownership. Denials surface as apperrors.ErrForbidden.
	CanAccess(p domain.Principal, o Ownership, action Action) error

	// ScopeToOwner returns the owner filter for list queries: nil for admins
	// (unscoped), the principal's own ID otherwise.
	ScopeToOwner(p domain.Principal) *string
}

// ServiceContainer holds instances of all application services; handlers
// receive this as their single dependency.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Authorizer  AuthorizerSvc
}
