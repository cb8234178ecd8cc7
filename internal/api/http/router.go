package http

import (
	"filler-robot/internal/api/ws"
	"filler-robot/internal/session"

	"github.com/gin-gonic/gin"
)

func SetupRouter(mgr *session.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", HealthHandler())

	// WebSocket for live turn updates
	r.GET("/ws", hub.HandleWS)

	// --- ENGINE ENDPOINTS ---
	r.POST("/decide", DecideHandler(mgr))

	// --- SESSION ENDPOINTS ---
	r.GET("/sessions", ListSessionsHandler(mgr))
	r.POST("/sessions", CreateSessionHandler(mgr))
	r.GET("/sessions/:id", GetSessionHandler(mgr, hub))
	r.DELETE("/sessions/:id", DeleteSessionHandler(mgr))
	r.POST("/sessions/:id/turns", PlayTurnHandler(mgr))

	// --- CONFIG ENDPOINTS ---
	r.GET("/config", GetConfigHandler(mgr))
	r.POST("/config", UpdateConfigHandler(mgr))

	return r
}
