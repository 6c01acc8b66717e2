package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserRequest is the admin payload for creating a user directly.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user guest"`
}

// UpdateUserRequest defines the data allowed for updating a user. Pointers
// differentiate omitted fields from zero values. Role changes are admin-only
// and enforced in the service.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user guest"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// ListUsersParams defines query parameters for the admin user listing.
type ListUsersParams struct {
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"per_page,default=15"`
	Role    string `form:"role" binding:"omitempty,oneof=admin user guest"`
	Search  string `form:"search"`
}

// UserWithStatistics pairs a user with their aggregate figures.
type UserWithStatistics struct {
	UserResponse
	Statistics *domain.UserStatistics `json:"statistics,omitempty"`
}

// ListUsersResponse wraps the paginated user list.
type ListUsersResponse struct {
	Users []UserWithStatistics `json:"users"`
	Meta  pagination.Meta      `json:"meta"`
}
