package websocket

import (
	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	wspkg "github.com/rakibhasan/coursehub/internal/pkg/websocket"
)

// WebSocketHandler serves the realtime channel. Clients connect with a
// bearer token and receive every course access broadcast; the only inbound
// message the server answers is a ping.
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// HandleWebSocket upgrades the connection and runs the client loop
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, conn *gorilla.Conn) error {
	client.Conn = conn
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("email", client.Email))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				logger.Warn("WebSocket read error",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			} else {
				logger.Info("WebSocket client disconnected",
					logger.String("user_id", client.UserID))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			if err := h.manager.SendMessage(conn, constants.EventPong, nil); err != nil {
				logger.Warn("Failed to answer ping",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
		default:
			if err := h.manager.SendErrorMessage(conn, constants.ErrorCodeUnknownEvent,
				"Unsupported event: "+msg.Event); err != nil {
				logger.Warn("Failed to send error message",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
		}
	}
}
