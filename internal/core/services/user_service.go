package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/platform/config"
	"github.com/budzetiranje/budget_tracking_app/internal/utils"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	authorizer    portssvc.AuthorizerSvc
	cfg           *config.Config
}

// NewUserService creates a new user service
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	reportingRepo portsrepo.ReportingRepository,
	authorizer portssvc.AuthorizerSvc,
	cfg *config.Config,
) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:      userRepo,
		reportingRepo: reportingRepo,
		authorizer:    authorizer,
		cfg:           cfg,
	}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// RegisterUser creates a user from a self-service signup. Registered users
// always get the 'user' role.
func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewAppError(409, "email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// AuthenticateUser checks email/password credentials. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *userServiceImpl) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Failed login attempt", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// ForgotPassword issues a reset token for the given email. To avoid account
// enumeration it reports success even when the email is unknown; the returned
// token is empty in that case.
func (s *userServiceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := time.Now().Add(s.cfg.ResetTokenExpiryDuration)

	if err := s.userRepo.UpdateResetToken(ctx, user.UserID, utils.HashOpaqueToken(rawToken), expiry); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.String("user_id", user.UserID))
		return "", err
	}

	s.LogInfo(ctx, "Password reset token issued", slog.String("user_id", user.UserID))
	return rawToken, nil
}

// ResetPassword completes the recovery flow: it verifies the reset token,
// swaps the password hash and revokes any outstanding refresh token.
func (s *userServiceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewAppError(401, "invalid reset token", apperrors.ErrUnauthorized)
		}
		return err
	}

	if user.ResetTokenHash == "" || user.ResetTokenExpiryTime == nil ||
		time.Now().After(*user.ResetTokenExpiryTime) ||
		!utils.CompareOpaqueTokenHash(req.Token, user.ResetTokenHash) {
		s.LogWarn(ctx, "Rejected password reset", slog.String("user_id", user.UserID))
		return apperrors.NewAppError(401, "invalid reset token", apperrors.ErrUnauthorized)
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.UserID, passwordHash); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", user.UserID))
		return err
	}
	if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token after password reset", slog.String("user_id", user.UserID))
		return err
	}

	s.LogInfo(ctx, "Password reset completed", slog.String("user_id", user.UserID))
	return nil
}

// CreateUser is the admin-only creation path: unlike registration it can
// assign any role.
func (s *userServiceImpl) CreateUser(ctx context.Context, p domain.Principal, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionManage); err != nil {
		s.LogWarn(ctx, "Denied user creation", slog.String("user_id", p.UserID))
		return nil, err
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewAppError(409, "email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// GetUserByID returns a user profile: admins can read anyone, everyone else
// only themselves.
func (s *userServiceImpl) GetUserByID(ctx context.Context, p domain.Principal, userID string) (*domain.User, error) {
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(userID), portssvc.ActionRead); err != nil {
		s.LogWarn(ctx, "Denied user read",
			slog.String("user_id", p.UserID),
			slog.String("target_user_id", userID))
		return nil, err
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers returns the admin listing with per-user statistics attached.
func (s *userServiceImpl) ListUsers(ctx context.Context, p domain.Principal, params dto.ListUsersParams) ([]domain.UserWithStatistics, int64, error) {
	if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionManage); err != nil {
		s.LogWarn(ctx, "Denied user listing", slog.String("user_id", p.UserID))
		return nil, 0, err
	}

	filter := portsrepo.ListUsersFilter{
		Search: params.Search,
		Page:   pagination.Normalize(params.Page, params.PerPage),
	}
	if params.Role != "" {
		role := domain.UserRole(params.Role)
		filter.Role = &role
	}

	users, total, err := s.userRepo.FindUsers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, 0, err
	}

	out := make([]domain.UserWithStatistics, len(users))
	for i := range users {
		out[i].User = users[i]
		stats, err := s.reportingRepo.GetUserStatistics(ctx, users[i].UserID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load user statistics", slog.String("user_id", users[i].UserID))
			return nil, 0, err
		}
		out[i].Statistics = *stats
	}
	return out, total, nil
}

// UpdateUser applies an admin edit to a user.
func (s *userServiceImpl) UpdateUser(ctx context.Context, p domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionManage); err != nil {
		s.LogWarn(ctx, "Denied user update",
			slog.String("user_id", p.UserID),
			slog.String("target_user_id", userID))
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name == nil && req.Email == nil && req.Role == nil && req.Password == nil {
		return nil, apperrors.NewAppError(422, "no updatable fields provided", apperrors.ErrValidation)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindUserByEmail(ctx, *req.Email); err == nil {
			return nil, apperrors.NewAppError(409, "email already registered", apperrors.ErrDuplicate)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	if req.Password != nil {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("target_user_id", userID))
	return user, nil
}

// DeleteUser removes a user and, through database cascades, their accounts
// and transactions. Admins cannot delete themselves.
func (s *userServiceImpl) DeleteUser(ctx context.Context, p domain.Principal, userID string) error {
	if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionManage); err != nil {
		s.LogWarn(ctx, "Denied user deletion",
			slog.String("user_id", p.UserID),
			slog.String("target_user_id", userID))
		return err
	}
	if p.UserID == userID {
		return apperrors.NewAppError(422, "cannot delete your own user", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}
