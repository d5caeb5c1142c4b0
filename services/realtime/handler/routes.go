package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/services/realtime/handler/nats"
	"github.com/rakibhasan/coursehub/services/realtime/handler/websocket"
)

// Handler coordinates the realtime protocol handlers
type Handler struct {
	wsHandler   *websocket.WebSocketHandler
	natsHandler *nats.NatsHandler
}

// NewHandler creates and initializes the realtime handlers
func NewHandler(wsHandler *websocket.WebSocketHandler, natsHandler *nats.NatsHandler) *Handler {
	return &Handler{
		wsHandler:   wsHandler,
		natsHandler: natsHandler,
	}
}

// RegisterRoutes registers the websocket route and starts the NATS consumers
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	e.GET("/ws", h.wsHandler.HandleWebSocket)
	return h.natsHandler.InitConsumers()
}

// Close drains the NATS subscriptions
func (h *Handler) Close() {
	h.natsHandler.Close()
}
