package session

import (
	"sync"
	"testing"

	"filler-robot/internal/config"
	"filler-robot/internal/game"
	"filler-robot/internal/protocol"
	"filler-robot/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHub struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHub) Broadcast(sessionID string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, sessionID+":"+action)
}

const turnText = `Anfield 5 3:
    01234
000 $....
001 .....
002 ..@..
Piece 1 1:
O
`

func newManager(hub Broadcaster) *Manager {
	return NewManager(store.NewMemoryStore(8), config.Default(), hub)
}

func TestCreateAndGet(t *testing.T) {
	m := newManager(nil)
	s := m.Create(game.PlayerTwo)
	require.NotEmpty(t, s.ID)

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, game.PlayerTwo, got.Player)
	assert.Empty(t, got.Turns)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestPlayRawRecordsAndBroadcasts(t *testing.T) {
	hub := &recordingHub{}
	m := newManager(nil)
	m.SetHub(hub)
	s := m.Create(game.PlayerOne)

	rec, err := m.PlayRaw(s.ID, turnText)
	require.NoError(t, err)
	assert.True(t, rec.Found)
	assert.Equal(t, game.Move{X: 2, Y: 2}, rec.Move)
	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, 4, rec.Score)
	assert.Equal(t, game.Summary{PlayerOne: 1, PlayerTwo: 1, Empty: 13}, rec.Territory)
	assert.Equal(t, game.Player(0), rec.Leader)
	assert.Equal(t, []string{s.ID + ":turn-decided"}, hub.events)

	got, _ := m.Get(s.ID)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, rec, got.Turns[0])
}

func TestPlayTurnWithoutMoveIsRecorded(t *testing.T) {
	m := newManager(nil)
	s := m.Create(game.PlayerTwo)

	b := game.NewBoard(3, []string{"@..", "..."})
	p := game.NewPiece(1, 1, []string{"O"})
	rec, err := m.PlayTurn(s.ID, b, p)
	require.NoError(t, err)
	assert.False(t, rec.Found)
	assert.Equal(t, game.NoMove, rec.Move)
	assert.Equal(t, game.ErrNoLegalMove.Error(), rec.Error)
	assert.Equal(t, game.PlayerOne, rec.Leader)
}

func TestPlayTurnUnknownSession(t *testing.T) {
	m := newManager(nil)
	_, err := m.PlayTurn("nope", game.Board{}, game.Piece{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlayRawIncomplete(t *testing.T) {
	m := newManager(nil)
	s := m.Create(game.PlayerOne)
	_, err := m.PlayRaw(s.ID, "Anfield 1 1:\n")
	assert.ErrorIs(t, err, protocol.ErrIncompleteTurn)
}

func TestSnapshotIsDetached(t *testing.T) {
	m := newManager(nil)
	s := m.Create(game.PlayerOne)
	before, _ := m.Get(s.ID)
	_, err := m.PlayRaw(s.ID, turnText)
	require.NoError(t, err)
	assert.Empty(t, before.Turns)
}

func TestListAndDelete(t *testing.T) {
	hub := &recordingHub{}
	m := newManager(hub)
	first := m.Create(game.PlayerOne)
	second := m.Create(game.PlayerTwo)
	_, err := m.PlayRaw(first.ID, turnText)
	require.NoError(t, err)

	list := m.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	assert.True(t, m.Delete(first.ID))
	assert.False(t, m.Delete(first.ID))
	_, ok := m.Get(first.ID)
	assert.False(t, ok)
	assert.Len(t, m.List(), 1)
	assert.Equal(t, []string{first.ID + ":turn-decided", first.ID + ":session-deleted"}, hub.events)
}

func TestUpdateEngineAppliesToLaterTurns(t *testing.T) {
	m := newManager(nil)
	s := m.Create(game.PlayerOne)

	e, err := m.UpdateEngine(config.Engine{Strategy: config.StrategyGrid, UnreachablePenalty: 7})
	require.NoError(t, err)
	assert.Equal(t, config.StrategyGrid, e.Strategy)
	assert.Equal(t, e, m.Config().Engine)

	rec, err := m.PlayRaw(s.ID, turnText)
	require.NoError(t, err)
	assert.Equal(t, game.StrategyGrid, rec.Strategy)

	_, err = m.UpdateEngine(config.Engine{RowPolicy: "shift"})
	assert.ErrorIs(t, err, config.ErrInvalidEngine)
	assert.Equal(t, config.RowPolicySkip, m.RowPolicy())
}
