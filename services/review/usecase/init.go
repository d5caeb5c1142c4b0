package usecase

import (
	"github.com/rakibhasan/coursehub/services/review"
)

type ReviewUC struct {
	reviewRepo review.ReviewRepo
}

// NewReviewUC creates a new review usecase instance
func NewReviewUC(reviewRepo review.ReviewRepo) *ReviewUC {
	return &ReviewUC{reviewRepo: reviewRepo}
}
