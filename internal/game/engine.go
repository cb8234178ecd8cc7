package game

import (
	"filler-robot/internal/config"
)

// Analysis is the full outcome of one turn's search.
type Analysis struct {
	Move       Move        `json:"move"`
	Found      bool        `json:"found"`
	Score      int         `json:"score"`
	Strategy   Strategy    `json:"strategy"`
	Candidates int         `json:"candidates"`
	Legal      int         `json:"legal"`
	Distance   DistanceMap `json:"distance,omitempty"`
}

// Result of scanning a candidate list.
type Result struct {
	Origin Pos
	Score  int
	Legal  int
	Found  bool
}

// Search scores every legal candidate and keeps the cheapest. The first
// candidate reaching the minimum wins.
func Search(b Board, p Piece, me Player, dist DistanceMap, candidates []Pos, penalty int) Result {
	var res Result
	for _, c := range candidates {
		if !IsValidPlacement(b, p, c, me) {
			continue
		}
		res.Legal++
		score := PlacementScore(p, c, dist, penalty)
		if !res.Found || score < res.Score {
			res.Origin = c
			res.Score = score
			res.Found = true
		}
	}
	return res
}

// Analyze runs one turn: distance transform, strategy choice, candidate
// generation, legality filter and selection.
func Analyze(b Board, p Piece, me Player, cfg *config.Config) (Analysis, error) {
	if !p.FitsIn(b) {
		return Analysis{}, ErrPieceTooLarge
	}
	if len(p.Stars) == 0 {
		return Analysis{}, ErrEmptyPiece
	}

	own := Territory(b, me)
	dist := BuildDistanceMap(b, me.Opponent())

	strategy, forced := ParseStrategy(cfg.Engine.Strategy)
	if !forced {
		strategy = ChooseStrategy(len(own), b, p)
	}
	cands := Candidates(b, p, own, strategy)
	res := Search(b, p, me, dist, cands, cfg.Engine.UnreachablePenalty)

	a := Analysis{
		Strategy:   strategy,
		Candidates: len(cands),
		Legal:      res.Legal,
		Distance:   dist,
	}
	if !res.Found {
		return a, ErrNoLegalMove
	}
	a.Move = Move{X: res.Origin.X, Y: res.Origin.Y}
	a.Found = true
	a.Score = res.Score
	return a, nil
}

func FindBestMove(b Board, p Piece, me Player, cfg *config.Config) (*Move, error) {
	a, err := Analyze(b, p, me, cfg)
	if err != nil {
		return nil, err
	}
	return &a.Move, nil
}
