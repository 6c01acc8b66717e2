package services

import (
	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
)

// authorizerImpl is the single access-control decision point. It is pure:
// every rule is a function of the principal, the resource ownership and the
// requested action, with no I/O.
type authorizerImpl struct{}

// NewAuthorizer creates the role-based authorizer.
func NewAuthorizer() portssvc.AuthorizerSvc {
	return &authorizerImpl{}
}

var _ portssvc.AuthorizerSvc = (*authorizerImpl)(nil)

// CanAccess decides whether the principal may perform action on a resource
// with the given ownership. All denials are apperrors.ErrForbidden, so
// callers cannot distinguish "not yours" from "role too low".
func (a *authorizerImpl) CanAccess(p domain.Principal, o portssvc.Ownership, action portssvc.Action) error {
	if !p.Role.IsValid() {
		return apperrors.ErrForbidden
	}
	if p.Role == domain.RoleAdmin {
		return nil
	}
	if action == portssvc.ActionManage {
		return apperrors.ErrForbidden
	}
	if o.Global {
		// Shared resources are readable by everyone, writable by admins only.
		if action == portssvc.ActionRead {
			return nil
		}
		return apperrors.ErrForbidden
	}
	if o.OwnerID == nil || *o.OwnerID != p.UserID {
		return apperrors.ErrForbidden
	}
	// Guests are read-only even on their own resources.
	if p.Role == domain.RoleGuest && action != portssvc.ActionRead {
		return apperrors.ErrForbidden
	}
	return nil
}

// ScopeToOwner returns the owner filter for list queries: nil for admins
// (unscoped), the principal's own ID for everyone else.
func (a *authorizerImpl) ScopeToOwner(p domain.Principal) *string {
	if p.Role == domain.RoleAdmin {
		return nil
	}
	userID := p.UserID
	return &userID
}
