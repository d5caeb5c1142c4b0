package handler

import (
	"fmt"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/review/handler/http"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewHandler(http.NewReviewHandler(nil), &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret"},
	})
	h.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[fmt.Sprintf("%s %s", r.Method, r.Path)] = true
	}

	assert.True(t, registered["POST /api/reviews"])
	assert.True(t, registered["GET /api/reviews/:courseId"])
	assert.True(t, registered["GET /api/admin/reviews"])
	assert.True(t, registered["PUT /api/admin/reviews/:id"])
}
