package repositories

import (
	"context"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// ListUsersFilter narrows the admin user listing.
type ListUsersFilter struct {
	Role   *domain.UserRole
	Search string // matches name or email, case-insensitive substring
	Page   pagination.Params
}

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, for login and registration checks.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a filtered, paginated user list plus the total count.
	FindUsers(ctx context.Context, filter ListUsersFilter) ([]domain.User, int64, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user; the database cascades to their accounts and
	// transitively their transactions.
	DeleteUser(ctx context.Context, userID string) error
}

// UserCredentialManager mutates the credential columns only.
type UserCredentialManager interface {
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
	UpdateResetToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error
	// UpdatePassword swaps the password hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserCredentialManager
}
