package payment

import (
	"context"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rakibhasan/coursehub/services/payment PaymentUC

// PaymentUC represents the payment usecase interface
type PaymentUC interface {
	SubmitPayment(ctx context.Context, req *models.SubmitPaymentRequest) (*models.Payment, error)
	SetPaymentStatus(ctx context.Context, id, status string) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter) (*models.PaymentPage, error)
}
