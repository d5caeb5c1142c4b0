package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/middleware"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/payment/handler/http"
)

// Handler coordinates the HTTP handlers for the payment service
type Handler struct {
	paymentHandler *http.PaymentHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the payment handlers
func NewHandler(paymentHandler *http.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		paymentHandler: paymentHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the payment routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/payments", h.paymentHandler.SubmitPayment)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT))
	admin.GET("/payments", h.paymentHandler.ListPayments)
	admin.GET("/payments/:id", h.paymentHandler.GetPayment)
	admin.PUT("/payments/:id", h.paymentHandler.UpdatePaymentStatus)
}
