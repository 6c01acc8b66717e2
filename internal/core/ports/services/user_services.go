package services

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

// UserRegistrar handles self-service signup and credential flows.
type UserRegistrar interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (resetToken string, err error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

// UserManager is the admin-facing user CRUD surface.
type UserManager interface {
	CreateUser(ctx context.Context, p domain.Principal, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, p domain.Principal, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, p domain.Principal, params dto.ListUsersParams) ([]domain.UserWithStatistics, int64, error)
	UpdateUser(ctx context.Context, p domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, p domain.Principal, userID string) error
}

// UserSvcFacade combines all user service capabilities.
type UserSvcFacade interface {
	UserRegistrar
	UserManager
}
