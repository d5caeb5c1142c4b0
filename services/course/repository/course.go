package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/course"
)

// CourseRepo reads the course catalog from Postgres.
type CourseRepo struct {
	db *database.PostgresClient
}

// NewCourseRepo creates a new course repository
func NewCourseRepo(db *database.PostgresClient) *CourseRepo {
	return &CourseRepo{db: db}
}

// ListCourses returns the full catalog.
func (r *CourseRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, title, description, price, duration, instructor, created_at
		FROM courses
		ORDER BY created_at
	`

	courses := []models.Course{}
	if err := r.db.GetDB().SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetCourse returns a single catalog entry.
func (r *CourseRepo) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, title, description, price, duration, instructor, created_at
		FROM courses
		WHERE id = $1
	`

	var c models.Course
	err := r.db.GetDB().GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, course.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &c, nil
}
