package game

import "errors"

var (
	ErrNoLegalMove   = errors.New("no legal moves available")
	ErrPieceTooLarge = errors.New("piece does not fit on the board")
	ErrEmptyPiece    = errors.New("piece has no filled cells")
	ErrUnknownPlayer = errors.New("unknown player")
)
