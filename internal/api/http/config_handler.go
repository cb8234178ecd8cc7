package http

import (
	"errors"
	"net/http"

	"filler-robot/internal/config"
	"filler-robot/internal/session"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler returns the engine configuration in effect
// @Summary Get engine configuration
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config [get]
func GetConfigHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := mgr.Config()
		c.JSON(http.StatusOK, gin.H{
			"engine":       cfg.Engine,
			"max_sessions": cfg.MaxSessions,
		})
	}
}

// UpdateConfigHandler changes the engine settings for subsequent turns
// @Summary Update engine configuration
// @Description Only the fields present are changed
// @Tags Config
// @Accept json
// @Produce json
// @Param request body config.Engine true "Engine settings"
// @Success 200 {object} map[string]interface{}
// @Router /config [post]
func UpdateConfigHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch config.Engine
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		e, err := mgr.UpdateEngine(patch)
		if errors.Is(err, config.ErrInvalidEngine) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"engine": e})
	}
}
