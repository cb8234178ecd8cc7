package protocol

import "errors"

var (
	ErrMalformedHeader = errors.New("malformed block header")
	ErrIncompleteTurn  = errors.New("turn needs an Anfield and a Piece block")
)
