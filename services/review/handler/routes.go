package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/middleware"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/review/handler/http"
)

// Handler coordinates the HTTP handlers for the review service
type Handler struct {
	reviewHandler *http.ReviewHandler
	cfg           *models.Config
}

// NewHandler creates and initializes the review handlers
func NewHandler(reviewHandler *http.ReviewHandler, cfg *models.Config) *Handler {
	return &Handler{
		reviewHandler: reviewHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the review routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/reviews", h.reviewHandler.SubmitReview)
	api.GET("/reviews/:courseId", h.reviewHandler.ListCourseReviews)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(h.cfg.JWT))
	admin.GET("/reviews", h.reviewHandler.ListReviews)
	admin.PUT("/reviews/:id", h.reviewHandler.UpdateReviewApproval)
}
