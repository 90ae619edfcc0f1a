package ws

import (
	"net/http"

	"upipay_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The demo serves QR pages from arbitrary hosts.
		return true
	},
}

type Handler struct {
	Manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{Manager: manager}
}

// ServeWS upgrades the connection and starts the per-connection loops.
// The client then sends a subscribe frame with its transaction reference.
func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := newClient(conn, h.Manager)

	go client.writePump()
	go client.readPump()

	client.trySend(connectedMessage{
		Type:    "connected",
		Message: "Successfully connected to payment server",
	})
}
