package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account. PasswordHash never leaves the service: it is
// excluded from JSON and stripped before the user is handed to handlers.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone" db:"phone"`
	DateOfBirth  *string   `json:"date_of_birth" db:"date_of_birth"`
	Gender       *string   `json:"gender" db:"gender"`
	Address      *string   `json:"address" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Public returns a copy safe to serialize in responses.
func (u *User) Public() *User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}

type RegisterRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	FullName    string  `json:"full_name" binding:"required"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial profile merge. Nil fields are left
// unchanged; there is no way to clear a field through this request.
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
}

// Empty reports whether the request carries no fields to update.
func (r *UpdateProfileRequest) Empty() bool {
	return r.FullName == nil && r.Phone == nil && r.DateOfBirth == nil &&
		r.Gender == nil && r.Address == nil
}

// TokenResponse is the register/login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}
