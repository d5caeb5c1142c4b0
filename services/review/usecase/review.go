package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/review"
)

// SubmitReview validates and records a review. New reviews start out
// unapproved and stay invisible until a moderator approves them.
func (u *ReviewUC) SubmitReview(ctx context.Context, req *models.SubmitReviewRequest) (*models.Review, error) {
	if req.CourseID == "" {
		return nil, fmt.Errorf("%w: courseId is required", review.ErrValidation)
	}
	if strings.TrimSpace(req.ReviewerName) == "" {
		return nil, fmt.Errorf("%w: reviewerName is required", review.ErrValidation)
	}
	isValid, email := utils.ValidateEmail(req.ReviewerEmail)
	if !isValid {
		return nil, fmt.Errorf("%w: invalid reviewer email", review.ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", review.ErrValidation)
	}
	if strings.TrimSpace(req.ReviewText) == "" {
		return nil, fmt.Errorf("%w: reviewText is required", review.ErrValidation)
	}

	rev := &models.Review{
		CourseID:      req.CourseID,
		ReviewerName:  strings.TrimSpace(req.ReviewerName),
		ReviewerEmail: email,
		Rating:        req.Rating,
		ReviewText:    strings.TrimSpace(req.ReviewText),
		IsApproved:    false,
	}
	if err := u.reviewRepo.CreateReview(ctx, rev); err != nil {
		return nil, err
	}

	logger.Info("Review submitted",
		logger.String("review_id", rev.ID.String()),
		logger.String("course_id", rev.CourseID))
	return rev, nil
}

// ListVisible returns the approved reviews for a course.
func (u *ReviewUC) ListVisible(ctx context.Context, courseID string) ([]models.Review, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: courseId is required", review.ErrValidation)
	}
	return u.reviewRepo.ListVisible(ctx, courseID)
}

// ListReviews returns a page of reviews for moderation.
func (u *ReviewUC) ListReviews(ctx context.Context, filter models.ReviewFilter) (*models.ReviewPage, error) {
	if filter.Status != "" && filter.Status != "pending" && filter.Status != "approved" {
		return nil, fmt.Errorf("%w: unknown status filter %q", review.ErrValidation, filter.Status)
	}
	return u.reviewRepo.ListReviews(ctx, filter)
}

// SetApproval toggles a review's visibility.
func (u *ReviewUC) SetApproval(ctx context.Context, id string, approved bool) (*models.Review, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, review.ErrReviewNotFound
	}

	rev, err := u.reviewRepo.SetApproval(ctx, reviewID, approved)
	if err != nil {
		return nil, err
	}

	logger.Info("Review approval updated",
		logger.String("review_id", id),
		logger.Bool("approved", approved))
	return rev, nil
}
