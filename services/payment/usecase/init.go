package usecase

import (
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/payment"
)

type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	grantRepo   payment.GrantRepo
	paymentGW   payment.PaymentGW
	notifier    payment.Notifier
	cfg         *models.Config
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payment.PaymentRepo,
	grantRepo payment.GrantRepo,
	paymentGW payment.PaymentGW,
	notifier payment.Notifier,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		grantRepo:   grantRepo,
		paymentGW:   paymentGW,
		notifier:    notifier,
		cfg:         cfg,
	}
}
