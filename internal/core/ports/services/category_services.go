package services

import (
	"context"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/dto"
)

// CategorySvcFacade manages income/expense categories. Categories are either
// owned by a single user or global (visible to everyone, writable by admins).
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, p domain.Principal, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, p domain.Principal, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, p domain.Principal, params dto.ListCategoriesParams) ([]domain.Category, int64, error)
	UpdateCategory(ctx context.Context, p domain.Principal, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, p domain.Principal, categoryID string) error
}
