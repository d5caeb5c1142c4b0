package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/course"
)

// CourseHandler handles HTTP requests for the course catalog
type CourseHandler struct {
	courseRepo course.CourseRepo
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courseRepo course.CourseRepo) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo}
}

// ListCourses returns the full catalog
func (h *CourseHandler) ListCourses(c echo.Context) error {
	courses, err := h.courseRepo.ListCourses(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list courses", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve courses")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Courses retrieved successfully", courses)
}

// GetCourse returns a single catalog entry
func (h *CourseHandler) GetCourse(c echo.Context) error {
	entry, err := h.courseRepo.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return utils.NotFoundResponse(c, "Course not found")
		}
		logger.Error("Failed to get course",
			logger.ErrorField(err),
			logger.String("course_id", c.Param("id")))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve course")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Course retrieved successfully", entry)
}
