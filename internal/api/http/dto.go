package http

import (
	"filler-robot/internal/game"
	"filler-robot/internal/shared"
)

// DecideRequest is the payload for /decide.
type DecideRequest struct {
	Player game.Player `json:"player" binding:"required"`
	shared.TurnInput
}

// DecideResponse mirrors game.Analysis plus the protocol line the robot
// would print.
type DecideResponse struct {
	X          int              `json:"x"`
	Y          int              `json:"y"`
	Found      bool             `json:"found"`
	Output     string           `json:"output"`
	Reason     string           `json:"reason,omitempty"`
	Score      int              `json:"score"`
	Strategy   game.Strategy    `json:"strategy"`
	Candidates int              `json:"candidates"`
	Legal      int              `json:"legal"`
	Distance   game.DistanceMap `json:"distance,omitempty"`
}

// CreateSessionRequest is the payload for POST /sessions.
type CreateSessionRequest struct {
	Player game.Player `json:"player" binding:"required"`
}
