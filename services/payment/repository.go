package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rakibhasan/coursehub/services/payment PaymentRepo,GrantRepo

// PaymentRepo defines persistence for payment submissions.
type PaymentRepo interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Payment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter) (*models.PaymentPage, error)
}

// GrantRepo hands out course access. Granting is idempotent and creates the
// account when the payer has never registered.
type GrantRepo interface {
	GrantCourse(ctx context.Context, email, name, courseID string) error
}
