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
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	authorizer   portssvc.AuthorizerSvc
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{
		categoryRepo: repo,
		authorizer:   authorizer,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

// categoryOwnership maps a category to its authorization ownership: global
// categories are shared resources, the rest belong to their owner.
func categoryOwnership(cat *domain.Category) portssvc.Ownership {
	if cat.UserID == nil {
		return portssvc.GlobalResource()
	}
	return portssvc.Ownership{OwnerID: cat.UserID}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, p domain.Principal, req dto.CreateCategoryRequest) (*domain.Category, error) {
	var ownerID *string
	if req.Global {
		if err := s.authorizer.CanAccess(p, portssvc.GlobalResource(), portssvc.ActionWrite); err != nil {
			s.LogWarn(ctx, "Denied global category creation", slog.String("user_id", p.UserID))
			return nil, err
		}
	} else {
		if err := s.authorizer.CanAccess(p, portssvc.OwnedBy(p.UserID), portssvc.ActionWrite); err != nil {
			return nil, err
		}
		userID := p.UserID
		ownerID = &userID
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     ownerID,
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.Bool("global", req.Global))
	return &category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, p domain.Principal, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, categoryOwnership(category), portssvc.ActionRead); err != nil {
		s.LogWarn(ctx, "Denied category read",
			slog.String("user_id", p.UserID),
			slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, p domain.Principal, params dto.ListCategoriesParams) ([]domain.Category, int64, error) {
	filter := portsrepo.ListCategoriesFilter{
		OwnerID:        s.authorizer.ScopeToOwner(p),
		IncludeDeleted: params.IncludeDeleted,
		Page:           pagination.Normalize(params.Page, params.PerPage),
	}
	if params.Type != "" {
		t := domain.CategoryType(params.Type)
		filter.Type = &t
	}

	categories, total, err := s.categoryRepo.ListCategories(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", p.UserID))
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, p domain.Principal, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.CanAccess(p, categoryOwnership(category), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied category update",
			slog.String("user_id", p.UserID),
			slog.String("category_id", categoryID))
		return nil, err
	}
	if category.IsDeleted() {
		return nil, apperrors.NewAppError(422, "cannot update a deleted category", apperrors.ErrValidation)
	}

	if req.Name == nil && req.Type == nil {
		return nil, apperrors.NewAppError(422, "no updatable fields provided", apperrors.ErrValidation)
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		// Changing the type does not rewrite history: existing transactions
		// keep the signed effect they were recorded with until they are
		// themselves updated through the ledger.
		category.Type = domain.CategoryType(*req.Type)
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, p domain.Principal, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := s.authorizer.CanAccess(p, categoryOwnership(category), portssvc.ActionWrite); err != nil {
		s.LogWarn(ctx, "Denied category deletion",
			slog.String("user_id", p.UserID),
			slog.String("category_id", categoryID))
		return err
	}
	if category.IsDeleted() {
		return apperrors.NewNotFoundError("category not found")
	}

	if err := s.categoryRepo.SoftDeleteCategory(ctx, categoryID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category deleted successfully", slog.String("category_id", categoryID))
	return nil
}
