package models

import (
	"database/sql"
)

// User represents a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
	ResetTokenHash         sql.NullString `db:"reset_token_hash"`
	ResetTokenExpiryTime   sql.NullTime   `db:"reset_token_expiry_time"`
}
