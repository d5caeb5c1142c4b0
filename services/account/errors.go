package account

import "errors"

// Sentinel errors returned by the account usecase. Handlers map these to
// HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrEmailExists        = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrOTPNotFound = errors.New("no verification code pending for this email")
	ErrOTPMismatch = errors.New("verification code does not match")
	ErrOTPExpired  = errors.New("verification code has expired")
)
