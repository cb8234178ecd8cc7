package shared

import (
	"errors"
	"time"

	"filler-robot/internal/game"
	"filler-robot/internal/protocol"
)

var ErrEmptyTurn = errors.New("turn needs board and piece rows or raw protocol text")

type Session struct {
	ID        string       `json:"id"`
	Player    game.Player  `json:"player"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Turns     []TurnRecord `json:"turns"`
}

// Snapshot copies the session so it can be serialised outside the lock.
func (s *Session) Snapshot() Session {
	out := *s
	out.Turns = append([]TurnRecord(nil), s.Turns...)
	return out
}

type TurnRecord struct {
	Index       int           `json:"index"`
	Move        game.Move     `json:"move"`
	Found       bool          `json:"found"`
	Score       int           `json:"score"`
	Strategy    game.Strategy `json:"strategy"`
	Candidates  int           `json:"candidates"`
	Legal       int           `json:"legal"`
	BoardWidth  int           `json:"board_width"`
	BoardHeight int           `json:"board_height"`
	Territory   game.Summary  `json:"territory"`
	Leader      game.Player   `json:"leader,omitempty"`
	Error       string        `json:"error,omitempty"`
	DecidedAt   time.Time     `json:"decided_at"`
}

// TurnInput is a turn submitted over HTTP or WebSocket, either as raw
// protocol text or as stripped rows.
type TurnInput struct {
	Raw        string   `json:"raw,omitempty"`
	Width      int      `json:"width,omitempty"`
	Board      []string `json:"board,omitempty"`
	PieceWidth int      `json:"piece_width,omitempty"`
	Piece      []string `json:"piece,omitempty"`
}

func widest(rows []string) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// Resolve turns the input into a board and a piece. Missing widths default
// to the widest row.
func (in TurnInput) Resolve(rowPolicy string) (game.Board, game.Piece, error) {
	if in.Raw != "" {
		return protocol.ParseTurn(in.Raw, rowPolicy)
	}
	if len(in.Board) == 0 || len(in.Piece) == 0 {
		return game.Board{}, game.Piece{}, ErrEmptyTurn
	}
	w := in.Width
	if w <= 0 {
		w = widest(in.Board)
	}
	pw := in.PieceWidth
	if pw <= 0 {
		pw = widest(in.Piece)
	}
	return game.NewBoard(w, in.Board), game.NewPiece(pw, len(in.Piece), in.Piece), nil
}
