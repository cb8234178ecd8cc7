package ws

import (
	"filler-robot/internal/game"
	"filler-robot/internal/shared"
)

type SessionManager interface {
	Get(id string) (shared.Session, bool)
	PlayTurn(id string, b game.Board, p game.Piece) (shared.TurnRecord, error)
	RowPolicy() string
}
