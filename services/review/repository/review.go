package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/review"
)

// ReviewRepo persists course reviews in Postgres.
type ReviewRepo struct {
	db *database.PostgresClient
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(db *database.PostgresClient) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// CreateReview inserts a review. The unique index on
// (course_id, reviewer_email) turns a duplicate into ErrDuplicateReview.
func (r *ReviewRepo) CreateReview(ctx context.Context, rev *models.Review) error {
	if rev.ID == uuid.Nil {
		rev.ID = uuid.New()
	}
	rev.CreatedAt = time.Now()

	query := `
		INSERT INTO reviews (id, course_id, reviewer_name, reviewer_email,
			rating, review_text, is_approved, created_at)
		VALUES (:id, :course_id, :reviewer_name, :reviewer_email,
			:rating, :review_text, :is_approved, :created_at)
	`
	if _, err := r.db.GetDB().NamedExecContext(ctx, query, rev); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return review.ErrDuplicateReview
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// ListVisible returns the approved reviews for a course, newest first.
func (r *ReviewRepo) ListVisible(ctx context.Context, courseID string) ([]models.Review, error) {
	query := `
		SELECT id, course_id, reviewer_name, reviewer_email,
			rating, review_text, is_approved, created_at
		FROM reviews
		WHERE course_id = $1 AND is_approved = TRUE
		ORDER BY created_at DESC
	`

	reviews := []models.Review{}
	if err := r.db.GetDB().SelectContext(ctx, &reviews, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListReviews returns a page of reviews for the admin view, newest first,
// optionally filtered by moderation state.
func (r *ReviewRepo) ListReviews(ctx context.Context, filter models.ReviewFilter) (*models.ReviewPage, error) {
	where := ""
	args := []interface{}{}

	switch filter.Status {
	case "approved":
		where = "WHERE is_approved = TRUE"
	case "pending":
		where = "WHERE is_approved = FALSE"
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reviews %s", where)
	if err := r.db.GetDB().GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT id, course_id, reviewer_name, reviewer_email,
			rating, review_text, is_approved, created_at
		FROM reviews %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	reviews := []models.Review{}
	if err := r.db.GetDB().SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return &models.ReviewPage{
		Reviews:     reviews,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// SetApproval toggles the moderation flag and returns the updated review.
func (r *ReviewRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Review, error) {
	query := `
		UPDATE reviews
		SET is_approved = $1
		WHERE id = $2
		RETURNING id, course_id, reviewer_name, reviewer_email,
			rating, review_text, is_approved, created_at
	`

	var rev models.Review
	err := r.db.GetDB().GetContext(ctx, &rev, query, approved, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to update review approval: %w", err)
	}
	return &rev, nil
}
