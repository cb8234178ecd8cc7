package game

import (
	"fmt"

	"filler-robot/internal/config"
)

type Strategy int

const (
	StrategyGrid Strategy = iota
	StrategyTerritory
)

func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategyTerritory:
		return "territory"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	v, ok := ParseStrategy(string(b))
	if !ok {
		return fmt.Errorf("unknown strategy %q", b)
	}
	*s = v
	return nil
}

// ParseStrategy maps a config value to a Strategy. ok is false for "auto"
// and anything unknown, meaning the cost estimate decides.
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case config.StrategyGrid:
		return StrategyGrid, true
	case config.StrategyTerritory:
		return StrategyTerritory, true
	}
	return StrategyGrid, false
}

// TerritoryCost estimates the work of the territory-anchored generator.
func TerritoryCost(ownCells, stars int) int {
	return ownCells * stars * stars
}

// GridCost estimates the work of a full scan. The piece must fit.
func GridCost(b Board, p Piece) int {
	return (b.Height - p.Height + 1) * (b.Width - p.Width + 1) * len(p.Stars)
}

// ChooseStrategy picks the cheaper generator. Equal costs go to the grid
// scan.
func ChooseStrategy(ownCells int, b Board, p Piece) Strategy {
	if TerritoryCost(ownCells, len(p.Stars)) < GridCost(b, p) {
		return StrategyTerritory
	}
	return StrategyGrid
}

// TerritoryCandidates returns every origin that puts some star of p on some
// owned cell while keeping the bounding box on the board. Duplicates are
// dropped, first occurrence keeps its position.
func TerritoryCandidates(b Board, p Piece, own []Pos) []Pos {
	maxX, maxY := b.Width-p.Width, b.Height-p.Height
	seen := make(map[Pos]struct{}, len(own)*len(p.Stars))
	out := make([]Pos, 0, len(own)*len(p.Stars))
	for _, cell := range own {
		for _, s := range p.Stars {
			x0, y0 := cell.X-s.DX, cell.Y-s.DY
			if x0 < 0 || y0 < 0 || x0 > maxX || y0 > maxY {
				continue
			}
			origin := Pos{X: x0, Y: y0}
			if _, dup := seen[origin]; dup {
				continue
			}
			seen[origin] = struct{}{}
			out = append(out, origin)
		}
	}
	return out
}

// GridCandidates enumerates every in-board origin row by row.
func GridCandidates(b Board, p Piece) []Pos {
	maxX, maxY := b.Width-p.Width, b.Height-p.Height
	if maxX < 0 || maxY < 0 {
		return nil
	}
	out := make([]Pos, 0, (maxX+1)*(maxY+1))
	for y := 0; y <= maxY; y++ {
		for x := 0; x <= maxX; x++ {
			out = append(out, Pos{X: x, Y: y})
		}
	}
	return out
}

// Candidates runs the generator for s.
func Candidates(b Board, p Piece, own []Pos, s Strategy) []Pos {
	if s == StrategyTerritory {
		return TerritoryCandidates(b, p, own)
	}
	return GridCandidates(b, p)
}
