package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"localgigs_backend/internal/logger"
	"localgigs_backend/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/ws")
	group.Use(middleware.AuthMiddleware())
	group.GET("", h.ServeWS)
}

// ServeWS upgrades an authenticated request to a websocket and starts
// the client pumps.
func (h *Handler) ServeWS(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h.manager, conn, userID)
	h.manager.register <- client

	go client.readPump()
	go client.writePump()
}
