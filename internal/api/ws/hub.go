package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"filler-robot/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans session events out to subscribed sockets. Writes happen under
// the exclusive lock since a websocket.Conn allows one writer at a time.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]struct{}
	manager  SessionManager
}

func NewHub(manager SessionManager) *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]struct{}),
		manager:  manager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session_id"})
		return
	}
	if _, ok := h.manager.Get(sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("WebSocket connection established for session: %s", sessionID)

	h.mu.Lock()
	if _, ok := h.sessions[sessionID]; !ok {
		h.sessions[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.sessions[sessionID][conn] = struct{}{}
	h.mu.Unlock()

	defer h.remove(sessionID, conn)

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading WebSocket message: %v", err)
			}
			break
		}

		switch msg.Action {
		case "turn":
			h.handleTurn(sessionID, conn, msg.Data)
		case "state":
			if s, ok := h.manager.Get(sessionID); ok {
				h.send(conn, "state", gin.H{"session": s})
			}
		default:
			log.Printf("Unknown action: %s", msg.Action)
			h.send(conn, "error", gin.H{"error": "unknown action " + msg.Action})
		}
	}
}

// handleTurn plays a submitted turn. The decision itself reaches every
// subscriber through the manager's broadcast; errors go back to the sender.
func (h *Hub) handleTurn(sessionID string, conn *websocket.Conn, data json.RawMessage) {
	var in shared.TurnInput
	if err := json.Unmarshal(data, &in); err != nil {
		h.send(conn, "error", gin.H{"error": "invalid turn payload"})
		return
	}
	b, p, err := in.Resolve(h.manager.RowPolicy())
	if err != nil {
		h.send(conn, "error", gin.H{"error": err.Error()})
		return
	}
	if _, err := h.manager.PlayTurn(sessionID, b, p); err != nil {
		log.Printf("Failed to play turn for %s: %v", sessionID, err)
		h.send(conn, "error", gin.H{"error": err.Error()})
	}
}

func (h *Hub) send(conn *websocket.Conn, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(map[string]interface{}{"action": action, "data": data}); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Hub) remove(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	if clients, ok := h.sessions[sessionID]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.sessions, sessionID)
		}
	}
	h.mu.Unlock()
	_ = conn.Close()
}

// Subscribers reports how many sockets follow a session.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

func (h *Hub) Broadcast(sessionID string, action string, data interface{}) {
	if h == nil {
		log.Printf("Hub instance is nil")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}
