package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/services/course/handler/http"
)

// Handler coordinates the HTTP handlers for the course catalog
type Handler struct {
	courseHandler *http.CourseHandler
}

// NewHandler creates and initializes the course handlers
func NewHandler(courseHandler *http.CourseHandler) *Handler {
	return &Handler{courseHandler: courseHandler}
}

// RegisterRoutes registers the course routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/courses", h.courseHandler.ListCourses)
	api.GET("/courses/:id", h.courseHandler.GetCourse)
}
