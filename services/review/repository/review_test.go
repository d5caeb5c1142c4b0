package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/review"
)

func setupReviewRepo(t *testing.T) (*ReviewRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	return NewReviewRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func TestCreateReview(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rev := &models.Review{
		CourseID:      "go-fundamentals",
		ReviewerName:  "Rakib Hasan",
		ReviewerEmail: "rakib@example.com",
		Rating:        5,
		ReviewText:    "Great course",
	}
	err := repo.CreateReview(context.Background(), rev)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rev.ID)
	assert.False(t, rev.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReview_Duplicate(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	mock.ExpectExec("INSERT INTO reviews").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.CreateReview(context.Background(), &models.Review{
		CourseID:      "go-fundamentals",
		ReviewerEmail: "rakib@example.com",
	})

	assert.ErrorIs(t, err, review.ErrDuplicateReview)
}

func TestListVisible(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "course_id", "reviewer_name", "reviewer_email",
		"rating", "review_text", "is_approved", "created_at",
	}).AddRow(id, "go-fundamentals", "Rakib Hasan", "rakib@example.com",
		5, "Great course", true, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reviews").
		WithArgs("go-fundamentals").
		WillReturnRows(rows)

	reviews, err := repo.ListVisible(context.Background(), "go-fundamentals")

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, id, reviews[0].ID)
	assert.True(t, reviews[0].IsApproved)
}

func TestListReviews_PendingFilter(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews WHERE is_approved = FALSE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	rows := sqlmock.NewRows([]string{
		"id", "course_id", "reviewer_name", "reviewer_email",
		"rating", "review_text", "is_approved", "created_at",
	}).AddRow(uuid.New(), "go-fundamentals", "Rakib Hasan", "rakib@example.com",
		4, "Solid intro", false, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE is_approved = FALSE").
		WithArgs(10, 0).
		WillReturnRows(rows)

	page, err := repo.ListReviews(context.Background(), models.ReviewFilter{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Reviews, 1)
	assert.False(t, page.Reviews[0].IsApproved)
}

func TestSetApproval(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "course_id", "reviewer_name", "reviewer_email",
		"rating", "review_text", "is_approved", "created_at",
	}).AddRow(id, "go-fundamentals", "Rakib Hasan", "rakib@example.com",
		5, "Great course", true, time.Now())

	mock.ExpectQuery("UPDATE reviews").
		WithArgs(true, id).
		WillReturnRows(rows)

	rev, err := repo.SetApproval(context.Background(), id, true)

	require.NoError(t, err)
	assert.True(t, rev.IsApproved)
}

func TestSetApproval_NotFound(t *testing.T) {
	repo, mock := setupReviewRepo(t)

	id := uuid.New()
	mock.ExpectQuery("UPDATE reviews").
		WithArgs(false, id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.SetApproval(context.Background(), id, false)

	assert.ErrorIs(t, err, review.ErrReviewNotFound)
}
