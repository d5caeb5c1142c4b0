package course

import (
	"context"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rakibhasan/coursehub/services/course CourseRepo

// CourseRepo defines read access to the course catalog.
type CourseRepo interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
}
