package models

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage is the envelope for every message pushed down the realtime channel
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is an error pushed to a websocket client
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient tracks one connected subscriber
type WebSocketClient struct {
	UserID string
	Email  string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims accepted on the websocket handshake
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// CourseAccessEvent is broadcast to all connected subscribers when a payment
// approval grants course access. Delivery is at-most-once with no replay;
// subscribers connected after the broadcast never see it.
type CourseAccessEvent struct {
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	CourseID   string    `json:"courseId"`
	CourseName string    `json:"courseName"`
	PaymentID  string    `json:"paymentId"`
	UserName   string    `json:"userName"`
	Timestamp  time.Time `json:"timestamp"`
}
