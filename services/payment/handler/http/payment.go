package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// SubmitPayment records a payment submission with status pending
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	var req models.SubmitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	p, err := h.paymentUC.SubmitPayment(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, payment.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to submit payment",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to submit payment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment submitted successfully", p)
}

// ListPayments returns a filtered page of payments for the admin view
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	filter := models.PaymentFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	page, err := h.paymentUC.ListPayments(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidStatus) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list payments", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve payments")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", page)
}

// GetPayment returns a single payment by ID
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	p, err := h.paymentUC.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, payment.ErrPaymentNotFound) {
			return utils.NotFoundResponse(c, "Payment not found")
		}
		logger.Error("Failed to get payment",
			logger.ErrorField(err),
			logger.String("payment_id", c.Param("id")))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", p)
}

// UpdatePaymentStatus moves a payment through its status machine
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	var req models.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	p, err := h.paymentUC.SetPaymentStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrPaymentNotFound):
			return utils.NotFoundResponse(c, "Payment not found")
		case errors.Is(err, payment.ErrInvalidStatus),
			errors.Is(err, payment.ErrIllegalTransition):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update payment status",
			logger.ErrorField(err),
			logger.String("payment_id", c.Param("id")),
			logger.String("status", req.Status))
		return utils.InternalServerErrorResponse(c, "Failed to update payment status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment status updated", p)
}

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
