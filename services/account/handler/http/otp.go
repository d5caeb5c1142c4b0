package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/account"
)

// OTPHandler handles HTTP requests for email verification and password reset
type OTPHandler struct {
	accountUC account.AccountUC
}

// NewOTPHandler creates a new OTP handler
func NewOTPHandler(accountUC account.AccountUC) *OTPHandler {
	return &OTPHandler{accountUC: accountUC}
}

// SendOTP issues a verification code for an email address
func (h *OTPHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.IssueOTP(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, account.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to issue OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to send verification code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyOTP checks a verification code
func (h *OTPHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		if resp := otpErrorResponse(c, err); resp != nil {
			return *resp
		}
		logger.Error("Failed to verify OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to verify code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified", nil)
}

// ForgotPassword issues a password reset code for an existing account
func (h *OTPHandler) ForgotPassword(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.IssueResetOTP(c.Request().Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, account.ErrUserNotFound):
			return utils.NotFoundResponse(c, "No account found for this email")
		}
		logger.Error("Failed to issue reset OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to send reset code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset code sent", nil)
}

// VerifyResetOTP checks a reset code without consuming it
func (h *OTPHandler) VerifyResetOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.VerifyResetOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		if resp := otpErrorResponse(c, err); resp != nil {
			return *resp
		}
		logger.Error("Failed to verify reset OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to verify reset code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reset code verified", nil)
}

// ResetPassword replaces the account password after code verification
func (h *OTPHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), &req); err != nil {
		if resp := otpErrorResponse(c, err); resp != nil {
			return *resp
		}
		logger.Error("Failed to reset password",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successful", nil)
}

// otpErrorResponse maps the usecase challenge errors onto HTTP responses.
// A nil return means the error was not a challenge error.
func otpErrorResponse(c echo.Context, err error) *error {
	var resp error
	switch {
	case errors.Is(err, account.ErrValidation):
		resp = utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, account.ErrOTPNotFound):
		resp = utils.BadRequestResponse(c, "No verification code pending for this email")
	case errors.Is(err, account.ErrOTPMismatch):
		resp = utils.BadRequestResponse(c, "Invalid verification code")
	case errors.Is(err, account.ErrOTPExpired):
		resp = utils.BadRequestResponse(c, "Verification code has expired")
	case errors.Is(err, account.ErrUserNotFound):
		resp = utils.NotFoundResponse(c, "No account found for this email")
	default:
		return nil
	}
	return &resp
}
