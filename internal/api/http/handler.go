package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"filler-robot/internal/api/ws"
	"filler-robot/internal/game"
	"filler-robot/internal/session"
	"filler-robot/internal/shared"

	"github.com/gin-gonic/gin"
)

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Decide a single turn
// @Description Stateless: runs the engine on one board and piece
// @Tags Engine
// @Accept json
// @Produce json
// @Param request body DecideRequest true "Turn"
// @Param distance query bool false "Include the distance map"
// @Success 200 {object} DecideResponse
// @Router /decide [post]
func DecideHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := mgr.Config()
		var req DecideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
			return
		}
		b, p, err := req.Resolve(cfg.Engine.RowPolicy)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		a, err := game.Analyze(b, p, req.Player, &cfg)
		resp := DecideResponse{
			X:          a.Move.X,
			Y:          a.Move.Y,
			Found:      a.Found,
			Output:     a.Move.String(),
			Score:      a.Score,
			Strategy:   a.Strategy,
			Candidates: a.Candidates,
			Legal:      a.Legal,
		}
		if err != nil {
			resp.Reason = err.Error()
			resp.Output = game.NoMove.String()
		}
		if c.Query("distance") == "1" || c.Query("distance") == "true" {
			resp.Distance = a.Distance
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Create an analysis session
// @Tags Session
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Player side"
// @Success 201 {object} map[string]interface{}
// @Router /sessions [post]
func CreateSessionHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player required (p1 or p2)"})
			return
		}
		s := mgr.Create(req.Player)
		c.JSON(http.StatusCreated, gin.H{"session": s})
	}
}

// @Summary List sessions
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /sessions [get]
func ListSessionsHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessions": mgr.List()})
	}
}

// @Summary Get a session and its turn history
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [get]
func GetSessionHandler(mgr *session.Manager, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s, ok := mgr.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session":     s,
			"subscribers": hub.Subscribers(id),
		})
	}
}

// @Summary Delete a session
// @Tags Session
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func DeleteSessionHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mgr.Delete(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Play a turn within a session
// @Description Accepts JSON rows or raw protocol text (Content-Type text/plain)
// @Tags Session
// @Accept json,plain
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/turns [post]
func PlayTurnHandler(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var (
			rec shared.TurnRecord
			err error
		)
		if strings.HasPrefix(c.ContentType(), "text/plain") {
			raw, rerr := io.ReadAll(c.Request.Body)
			if rerr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
				return
			}
			rec, err = mgr.PlayRaw(id, string(raw))
		} else {
			var in shared.TurnInput
			if berr := c.ShouldBindJSON(&in); berr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
				return
			}
			b, p, rerr := in.Resolve(mgr.RowPolicy())
			if rerr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": rerr.Error()})
				return
			}
			rec, err = mgr.PlayTurn(id, b, p)
		}

		switch {
		case errors.Is(err, session.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"turn": rec, "output": rec.Move.String()})
		}
	}
}
