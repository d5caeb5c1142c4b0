package nats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/pkg/websocket"
)

func newTestHandler() (*NatsHandler, *websocket.Manager) {
	manager := websocket.NewManager(models.JWTConfig{Secret: "test-secret"})
	return NewNatsHandler(nil, manager), manager
}

func TestHandleCourseGranted(t *testing.T) {
	h, manager := newTestHandler()

	// connected clients with nil conns observe the broadcast without panicking
	manager.AddClient(&models.WebSocketClient{UserID: "user-1", Email: "rakib@example.com"})
	manager.AddClient(&models.WebSocketClient{UserID: "user-2", Email: "anika@example.com"})

	event := models.CourseAccessEvent{
		Type:       "courseAccessUpdated",
		Email:      "rakib@example.com",
		CourseID:   "go-fundamentals",
		CourseName: "Go Fundamentals",
		PaymentID:  "3b6cfb9e-9f3a-4a33-8e3e-0f1b5a9d2c10",
		UserName:   "Rakib Hasan",
		Timestamp:  time.Now(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	err = h.handleCourseGranted(payload)
	assert.NoError(t, err)
}

func TestHandleCourseGranted_NoClients(t *testing.T) {
	h, _ := newTestHandler()

	payload, err := json.Marshal(models.CourseAccessEvent{
		Type:     "courseAccessUpdated",
		Email:    "rakib@example.com",
		CourseID: "go-fundamentals",
	})
	require.NoError(t, err)

	assert.NoError(t, h.handleCourseGranted(payload))
}

func TestHandleCourseGranted_InvalidPayload(t *testing.T) {
	h, _ := newTestHandler()

	err := h.handleCourseGranted([]byte("not json"))
	assert.Error(t, err)
}
