package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	natspkg "github.com/rakibhasan/coursehub/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the payment service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishCourseGranted publishes a course access event for the realtime
// fanout. Delivery is at most once; subscribers that are down miss it.
func (g *NATSGateway) PublishCourseGranted(ctx context.Context, event *models.CourseAccessEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal course access event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectPaymentCourseGrant, data); err != nil {
		logger.Error("Failed to publish course access event",
			logger.String("email", event.Email),
			logger.String("course_id", event.CourseID),
			logger.ErrorField(err))
		return fmt.Errorf("failed to publish course access event: %w", err)
	}

	logger.Info("Published course access event",
		logger.String("email", event.Email),
		logger.String("course_id", event.CourseID))
	return nil
}
