package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account on the platform. Courses holds the
// identifiers of every course the user has been granted access to.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Courses      []string   `json:"courses" db:"-"`
	OTPCode      *string    `json:"-" db:"otp_code"`
	OTPExpiresAt *time.Time `json:"-" db:"otp_expires_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// UserSummary is the public shape returned by register and login
type UserSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Courses []string `json:"courses"`
}

// Summary returns the public representation of the user
func (u *User) Summary() UserSummary {
	courses := u.Courses
	if courses == nil {
		courses = []string{}
	}
	return UserSummary{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		Courses: courses,
	}
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a request to authenticate with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest represents a request to set a new password after
// presenting a valid reset OTP
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      UserSummary `json:"user"`
	ExpiresAt int64       `json:"expires_at"`
}
