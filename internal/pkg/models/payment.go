package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Payment methods accepted at submission
var PaymentMethods = []string{"bkash", "nagad", "bank", "card"}

// Payment represents a purchase submission awaiting an administrative
// decision. Status transitions only through the payment usecase.
type Payment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	CourseID      string    `json:"courseId" db:"course_id"`
	CourseName    string    `json:"courseName" db:"course_name"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	TxnID         string    `json:"txnId" db:"txn_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"date" db:"created_at"`
}

// ValidPaymentMethod reports whether method is one of the accepted tags
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ValidPaymentStatus reports whether status is a known status value
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return true
	}
	return false
}

// SubmitPaymentRequest represents a payment submission
type SubmitPaymentRequest struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required"`
	Phone         string  `json:"phone" validate:"required"`
	CourseID      string  `json:"courseId" validate:"required"`
	CourseName    string  `json:"courseName"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TxnID         string  `json:"txnId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
}

// UpdatePaymentStatusRequest represents an administrative status decision
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PaymentFilter narrows the admin payment listing
type PaymentFilter struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// PaymentPage is one page of the admin payment listing
type PaymentPage struct {
	Payments    []Payment `json:"payments"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}
