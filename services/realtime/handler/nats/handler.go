package nats

import (
	"encoding/json"
	"fmt"

	natsgo "github.com/nats-io/nats.go"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	natspkg "github.com/rakibhasan/coursehub/internal/pkg/nats"
	"github.com/rakibhasan/coursehub/internal/pkg/websocket"
)

// NatsHandler bridges internal events onto the websocket channel
type NatsHandler struct {
	natsClient *natspkg.Client
	wsManager  *websocket.Manager
	subs       []*natsgo.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(natsClient *natspkg.Client, wsManager *websocket.Manager) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		wsManager:  wsManager,
	}
}

// InitConsumers initializes the NATS consumers for realtime events
func (h *NatsHandler) InitConsumers() error {
	grantSub, err := h.natsClient.Subscribe(constants.SubjectPaymentCourseGrant, func(msg *natsgo.Msg) {
		if err := h.handleCourseGranted(msg.Data); err != nil {
			logger.Error("Error handling course access event", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to course access events: %w", err)
	}
	h.subs = append(h.subs, grantSub)

	return nil
}

// handleCourseGranted fans a course access event out to every connected client
func (h *NatsHandler) handleCourseGranted(msg []byte) error {
	var event models.CourseAccessEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal course access event: %w", err)
	}

	h.wsManager.Broadcast(constants.EventCourseAccessUpdated, event)

	logger.Info("Broadcast course access event",
		logger.String("email", event.Email),
		logger.String("course_id", event.CourseID),
		logger.Int("clients", h.wsManager.ClientCount()))
	return nil
}

// Close drains the subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.ErrorField(err))
		}
	}
}
