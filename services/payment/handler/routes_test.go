package handler

import (
	"fmt"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/payment/handler/http"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := NewHandler(http.NewPaymentHandler(nil), &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret"},
	})
	h.RegisterRoutes(e)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[fmt.Sprintf("%s %s", r.Method, r.Path)] = true
	}

	assert.True(t, registered["POST /api/payments"])
	assert.True(t, registered["GET /api/admin/payments"])
	assert.True(t, registered["GET /api/admin/payments/:id"])
	assert.True(t, registered["PUT /api/admin/payments/:id"])
}
