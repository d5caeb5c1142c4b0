package payment

import "errors"

// Sentinel errors returned by the payment usecase.
var (
	ErrValidation        = errors.New("validation failed")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidStatus     = errors.New("invalid payment status")
	ErrIllegalTransition = errors.New("illegal status transition")
)
