package session

type Broadcaster interface {
	Broadcast(sessionID string, action string, data interface{})
}
