package routes

import (
	"github.com/gin-gonic/gin"

	"localgigs_backend/internal/handlers"
	"localgigs_backend/internal/logger"
	"localgigs_backend/ws"
)

// RegisterRoutes mounts every HTTP and websocket route.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, wsHandler *ws.Handler) {
	api := router.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Job.RegisterRoutes(api)
		appHandlers.Chat.RegisterRoutes(api)
	}

	wsHandler.RegisterRoutes(&router.RouterGroup)

	logger.Info("Routes registered", "api_prefix", "/api/v1")
}
