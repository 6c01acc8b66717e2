package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/apperrors"
	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	authorizer  portssvc.AuthorizerSvc
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: repo,
		authorizer:  authorizer,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, p domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error) {
	ownerID := p.UserID
	if req.UserID != nil && *req.UserID != p.UserID {
		// Creating on behalf of another user is an admin-only move.
		if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(*req.UserID), portssvc.ActionWrite); err != nil {
			s.LogWarn(ctx, "Denied account creation for another user",
				slog.String("user_id", p.UserID),
				slog.String("target_user_id", *req.UserID))
			return nil, err
		}
		ownerID = *req.UserID
	} else {
		if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(ownerID), portssvc.ActionWrite); err != nil {
			return nil, err
		}
	}

	balance := decimal.Zero
	if req.Balance != nil {
		balance = *req.Balance
	}
	budget := decimal.Zero
	if req.MonthlyBudget != nil {
		budget = *req.MonthlyBudget
	}

	now := time.Now()
	account := domain.Account{
		AccountID:        uuid.NewString(),
		UserID:           ownerID,
		Name:             req.Name,
		Balance:          balance,
		MonthlyBudget:    budget,
		LastMonthBalance: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("owner_id", ownerID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, p domain.Principal, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionRead); err != nil {
		s.LogWarn(ctx, "Denied account read",
			slog.String("user_id", p.UserID),
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, p domain.Principal, params dto.ListAccountsParams) ([]domain.Account, int64, error) {
	page := pagination.Normalize(params.Page, params.PerPage)
	ownerID := s.authorizer.ScopeToOwner(p)

	accounts, total, err := s.accountRepo.ListAccounts(ctx, ownerID, page)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", p.UserID))
		return nil, 0, err
	}
	return accounts, total, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, p domain.Principal, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied account update",
			slog.String("user_id", p.UserID),
			slog.String("account_id", accountID))
		return nil, err
	}

	if req.Name == nil && req.MonthlyBudget == nil {
		return nil, apperrors.NewAppError(422, "no updatable fields provided", apperrors.ErrValidation)
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.MonthlyBudget != nil {
		account.MonthlyBudget = *req.MonthlyBudget
	}
	account.LastUpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, p domain.Principal, accountID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(account.UserID), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied account deletion",
			slog.String("user_id", p.UserID),
			slog.String("account_id", accountID))
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully", slog.String("account_id", accountID))
	return nil
}
