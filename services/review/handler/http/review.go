package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/review"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	reviewUC review.ReviewUC
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUC review.ReviewUC) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// SubmitReview records a new review pending moderation
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req models.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rev, err := h.reviewUC.SubmitReview(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrValidation):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, review.ErrDuplicateReview):
			return utils.BadRequestResponse(c, "You have already reviewed this course")
		}
		logger.Error("Failed to submit review",
			logger.ErrorField(err),
			logger.String("course_id", req.CourseID))
		return utils.InternalServerErrorResponse(c, "Failed to submit review")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted for moderation", rev)
}

// ListCourseReviews returns the approved reviews for a course
func (h *ReviewHandler) ListCourseReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListVisible(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		if errors.Is(err, review.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list course reviews",
			logger.ErrorField(err),
			logger.String("course_id", c.Param("courseId")))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve reviews")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// ListReviews returns a page of reviews for the admin moderation view
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	filter := models.ReviewFilter{
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	page, err := h.reviewUC.ListReviews(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, review.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list reviews", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve reviews")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reviews retrieved successfully", page)
}

// UpdateReviewApproval toggles a review's visibility
func (h *ReviewHandler) UpdateReviewApproval(c echo.Context) error {
	var req models.UpdateReviewApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rev, err := h.reviewUC.SetApproval(c.Request().Context(), c.Param("id"), req.IsApproved)
	if err != nil {
		if errors.Is(err, review.ErrReviewNotFound) {
			return utils.NotFoundResponse(c, "Review not found")
		}
		logger.Error("Failed to update review approval",
			logger.ErrorField(err),
			logger.String("review_id", c.Param("id")))
		return utils.InternalServerErrorResponse(c, "Failed to update review")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Review updated successfully", rev)
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
