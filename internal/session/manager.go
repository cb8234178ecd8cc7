package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"filler-robot/internal/config"
	"filler-robot/internal/game"
	"filler-robot/internal/protocol"
	"filler-robot/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	GetSession(id string) (*shared.Session, bool)
	SaveSession(s *shared.Session)
	DeleteSession(id string) bool
	ListSessions() []*shared.Session
}

type Manager struct {
	mu    sync.Mutex
	store Store
	cfg   config.Config
	hub   Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hub = hub
}

func (m *Manager) Config() config.Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

func (m *Manager) RowPolicy() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Engine.RowPolicy
}

// UpdateEngine merges patch into the engine settings used by later turns.
func (m *Manager) UpdateEngine(patch config.Engine) (config.Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.cfg.Engine.Merge(patch)
	if err != nil {
		return m.cfg.Engine, err
	}
	m.cfg.Engine = e
	log.Printf("engine config updated: penalty=%d strategy=%s row policy=%s", e.UnreachablePenalty, e.Strategy, e.RowPolicy)
	return e, nil
}

func (m *Manager) Create(player game.Player) shared.Session {
	now := time.Now()
	s := &shared.Session{
		ID:        uuid.NewString(),
		Player:    player,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.SaveSession(s)
	log.Printf("session %s created for %s", s.ID, player)
	return s.Snapshot()
}

func (m *Manager) Get(id string) (shared.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.store.GetSession(id)
	if !ok {
		return shared.Session{}, false
	}
	return s.Snapshot(), true
}

// List returns snapshots of every stored session, most recently updated
// first.
func (m *Manager) List() []shared.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.store.ListSessions()
	out := make([]shared.Session, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.Snapshot())
	}
	return out
}

// Delete drops a session and tells its subscribers it is gone.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	ok := m.store.DeleteSession(id)
	hub := m.hub
	m.mu.Unlock()

	if !ok {
		return false
	}
	log.Printf("session %s deleted", id)
	if hub != nil {
		hub.Broadcast(id, "session-deleted", gin.H{"session_id": id})
	}
	return true
}

// PlayTurn decides the move for one board/piece pair within a session and
// records it. A turn without a legal move is recorded too; only an unknown
// session is an error.
func (m *Manager) PlayTurn(id string, b game.Board, p game.Piece) (shared.TurnRecord, error) {
	m.mu.Lock()
	s, ok := m.store.GetSession(id)
	if !ok {
		m.mu.Unlock()
		return shared.TurnRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	a, err := game.Analyze(b, p, s.Player, &m.cfg)
	rec := shared.TurnRecord{
		Index:       len(s.Turns) + 1,
		Move:        a.Move,
		Found:       a.Found,
		Score:       a.Score,
		Strategy:    a.Strategy,
		Candidates:  a.Candidates,
		Legal:       a.Legal,
		BoardWidth:  b.Width,
		BoardHeight: b.Height,
		Territory:   game.Summarize(b),
		DecidedAt:   time.Now(),
	}
	rec.Leader = rec.Territory.Leader()
	if err != nil {
		rec.Move = game.NoMove
		rec.Error = err.Error()
	}
	s.Turns = append(s.Turns, rec)
	s.UpdatedAt = rec.DecidedAt
	m.store.SaveSession(s)
	hub := m.hub
	m.mu.Unlock()

	if hub != nil {
		hub.Broadcast(id, "turn-decided", gin.H{
			"session_id": id,
			"turn":       rec,
		})
	}
	return rec, nil
}

// PlayRaw parses protocol text holding one Anfield and one Piece block and
// plays it.
func (m *Manager) PlayRaw(id, text string) (shared.TurnRecord, error) {
	b, p, err := protocol.ParseTurn(text, m.RowPolicy())
	if err != nil {
		return shared.TurnRecord{}, err
	}
	return m.PlayTurn(id, b, p)
}
