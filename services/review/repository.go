package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rakibhasan/coursehub/services/review ReviewRepo

// ReviewRepo defines persistence for course reviews. Uniqueness of
// (course_id, reviewer_email) is enforced by the store; a duplicate insert
// surfaces as ErrDuplicateReview.
type ReviewRepo interface {
	CreateReview(ctx context.Context, review *models.Review) error
	ListVisible(ctx context.Context, courseID string) ([]models.Review, error)
	ListReviews(ctx context.Context, filter models.ReviewFilter) (*models.ReviewPage, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error)
}
