package review

import (
	"context"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rakibhasan/coursehub/services/review ReviewUC

// ReviewUC represents the review usecase interface
type ReviewUC interface {
	SubmitReview(ctx context.Context, req *models.SubmitReviewRequest) (*models.Review, error)
	ListVisible(ctx context.Context, courseID string) ([]models.Review, error)
	ListReviews(ctx context.Context, filter models.ReviewFilter) (*models.ReviewPage, error)
	SetApproval(ctx context.Context, id string, approved bool) (*models.Review, error)
}
