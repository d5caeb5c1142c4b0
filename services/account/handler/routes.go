package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/middleware"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account/handler/http"
)

// Handler coordinates the HTTP handlers for the account service
type Handler struct {
	authHandler *http.AuthHandler
	otpHandler  *http.OTPHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the account handlers
func NewHandler(
	authHandler *http.AuthHandler,
	otpHandler *http.OTPHandler,
	userHandler *http.UserHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		otpHandler:  otpHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the account routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Public routes
	api.POST("/register", h.authHandler.Register)
	api.POST("/login", h.authHandler.Login)
	api.POST("/send-otp", h.otpHandler.SendOTP)
	api.POST("/verify-otp", h.otpHandler.VerifyOTP)
	api.POST("/forgot-password", h.otpHandler.ForgotPassword)
	api.POST("/verify-reset-otp", h.otpHandler.VerifyResetOTP)
	api.POST("/reset-password", h.otpHandler.ResetPassword)

	// Protected routes
	protected := api.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/users/:email/courses", h.userHandler.GetUserCourses)
}
