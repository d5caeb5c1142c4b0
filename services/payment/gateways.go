package payment

import (
	"context"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rakibhasan/coursehub/services/payment PaymentGW

// PaymentGW defines the payment gateways interface
type PaymentGW interface {
	// NATS Gateway
	PublishCourseGranted(ctx context.Context, event *models.CourseAccessEvent) error
}
