package repositories

import (
	"context"
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// ListCategoriesFilter narrows the category listing. OwnerID scoping always
// includes global (ownerless) categories.
type ListCategoriesFilter struct {
	OwnerID        *string
	Type           *domain.CategoryType
	IncludeDeleted bool
	Page           pagination.Params
}

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a category by ID, tombstoned ones included so
	// historical transactions can still resolve their category.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves a filtered, paginated category list plus total count.
	ListCategories(ctx context.Context, filter ListCategoriesFilter) ([]domain.Category, int64, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates name and type of an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// SoftDeleteCategory tombstones a category. The row is kept so existing
	// transactions retain a valid reference.
	SoftDeleteCategory(ctx context.Context, categoryID string, deletedAt time.Time) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
