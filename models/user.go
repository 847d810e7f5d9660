package models

import "time"

// User is a platform account persisted in the users table.
//
// Password is the inbound plain-text credential accepted on registration and
// login only; it is never stored. PasswordHash holds the bcrypt hash and is
// excluded from JSON serialization so it can never leak into a response body.
type User struct {
	UserID       int64     `json:"user_id"`
	OrgID        int64     `json:"org_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
