package domain

import "time"

// CategoryType classifies a category as money coming in or going out.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// IsValid reports whether the type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category labels transactions. A nil UserID marks a global category visible
// to every user. Categories are soft-deleted so historical transactions keep
// a valid reference; the database additionally restricts hard deletes while
// transactions point at the row.
type Category struct {
	CategoryID string       `json:"categoryID"`
	UserID     *string      `json:"userID,omitempty"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the category has been tombstoned.
func (c Category) IsDeleted() bool {
	return c.DeletedAt != nil
}
