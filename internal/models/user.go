package models

import (
	"database/sql"
	"time"
)

// User is the persistence shape of an application user.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Email        sql.NullString `db:"email"`
	CreatedAt    time.Time      `db:"created_at"`
}
