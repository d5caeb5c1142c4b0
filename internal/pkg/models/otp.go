package models

import (
	"time"
)

// OTP represents a one-time code challenge bound to an email address.
// For registered users the challenge lives on the user row; for addresses
// with no account yet it lives in Redis with the TTL as the key expiry.
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge is past its TTL
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// SendOTPRequest represents a request to issue an OTP
type SendOTPRequest struct {
	Email string `json:"email" validate:"required"`
}

// VerifyOTPRequest represents a request to verify a claimed OTP
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}
