package models

import (
	"database/sql"
	"time"
)

// Category represents a row of the categories table. UserID is NULL for
// global categories; DeletedAt implements the soft delete.
type Category struct {
	CategoryID string         `db:"category_id"`
	UserID     sql.NullString `db:"user_id"`
	Name       string         `db:"name"`
	Type       string         `db:"type"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
