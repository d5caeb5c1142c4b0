package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Course access events
	EventCourseAccessUpdated = "courseAccessUpdated"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorUnauthorized     = "unauthorized"
	ErrorInternalError    = "internal_error"
	ErrorCodeUnknownEvent = "unknown_event"
)
