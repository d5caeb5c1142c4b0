package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/account"
)

// UserHandler handles HTTP requests for account data
type UserHandler struct {
	accountUC account.AccountUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(accountUC account.AccountUC) *UserHandler {
	return &UserHandler{accountUC: accountUC}
}

// GetUserCourses returns the course IDs granted to an account
func (h *UserHandler) GetUserCourses(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	courses, err := h.accountUC.GetUserCourses(c.Request().Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, account.ErrUserNotFound):
			return utils.NotFoundResponse(c, "No account found for this email")
		}
		logger.Error("Failed to get user courses",
			logger.ErrorField(err),
			logger.String("email", email))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve courses")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Courses retrieved successfully", courses)
}
