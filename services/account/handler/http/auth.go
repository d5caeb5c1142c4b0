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

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	accountUC account.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC account.AccountUC) *AuthHandler {
	return &AuthHandler{accountUC: accountUC}
}

// Register handles account creation requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, account.ErrEmailExists):
			return utils.BadRequestResponse(c, "Email is already registered")
		}
		logger.Error("Failed to register user",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to register user")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles credential verification requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Failed to log in user",
			logger.ErrorField(err),
			logger.String("email", req.Email))
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
