package dto

import (
	"time"

	"github.com/budzetiranje/budget_tracking_app/internal/core/domain"
	"github.com/budzetiranje/budget_tracking_app/internal/utils/pagination"
)

// CreateCategoryRequest creates a category owned by the caller. Admins may
// set Global to create an ownerless category visible to everyone.
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required,max=255"`
	Type   string `json:"type" binding:"required,oneof=income expense"`
	Global bool   `json:"global"`
}

// UpdateCategoryRequest updates category attributes.
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Type *string `json:"type" binding:"omitempty,oneof=income expense"`
}

// ListCategoriesParams defines query parameters for listing categories.
// include_deleted opts tombstoned categories back in for historical display.
type ListCategoriesParams struct {
	Page           int    `form:"page,default=1"`
	PerPage        int    `form:"per_page,default=15"`
	Type           string `form:"type" binding:"omitempty,oneof=income expense"`
	IncludeDeleted bool   `form:"include_deleted"`
}

// CategoryResponse is the public shape of a category.
type CategoryResponse struct {
	CategoryID string     `json:"categoryID"`
	UserID     *string    `json:"userID,omitempty"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	CreatedAt  time.Time  `json:"createdAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
}

// ListCategoriesResponse wraps the paginated category list.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Meta       pagination.Meta    `json:"meta"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		UserID:     c.UserID,
		Name:       c.Name,
		Type:       string(c.Type),
		CreatedAt:  c.CreatedAt,
		DeletedAt:  c.DeletedAt,
	}
}

// ToListCategoriesResponse converts domain categories plus meta to the list DTO.
func ToListCategoriesResponse(categories []domain.Category, meta pagination.Meta) ListCategoriesResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return ListCategoriesResponse{Categories: out, Meta: meta}
}
