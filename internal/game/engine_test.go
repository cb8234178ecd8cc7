package game

import (
	"math/rand"
	"testing"

	"filler-robot/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(strategy string) *config.Config {
	cfg := config.Default()
	cfg.Engine.Strategy = strategy
	return &cfg
}

func TestFindBestMoveSingleCell(t *testing.T) {
	b := boardOf(
		"$....",
		".....",
		"..@..",
		".....",
		".....",
	)
	p := NewPiece(1, 1, []string{"O"})

	for _, s := range []string{config.StrategyAuto, config.StrategyGrid, config.StrategyTerritory} {
		mv, err := FindBestMove(b, p, PlayerOne, testConfig(s))
		require.NoError(t, err, s)
		assert.Equal(t, Move{X: 2, Y: 2}, *mv, s)
	}
}

func TestFindBestMovePieceTooLarge(t *testing.T) {
	b := boardOf("@.", "..")
	p := NewPiece(3, 1, []string{"OOO"})
	_, err := FindBestMove(b, p, PlayerOne, testConfig(config.StrategyAuto))
	assert.ErrorIs(t, err, ErrPieceTooLarge)

	tall := NewPiece(1, 3, []string{"O", "O", "O"})
	a, err := Analyze(b, tall, PlayerOne, testConfig(config.StrategyAuto))
	assert.ErrorIs(t, err, ErrPieceTooLarge)
	assert.Zero(t, a.Candidates)
}

func TestFindBestMoveNoTerritory(t *testing.T) {
	b := boardOf(
		"$...",
		"....",
		"...s",
	)
	p := NewPiece(1, 1, []string{"O"})
	for _, s := range []string{config.StrategyAuto, config.StrategyGrid, config.StrategyTerritory} {
		a, err := Analyze(b, p, PlayerOne, testConfig(s))
		assert.ErrorIs(t, err, ErrNoLegalMove, s)
		assert.False(t, a.Found)
		assert.Zero(t, a.Legal)
	}
}

func TestFindBestMoveEmptyPiece(t *testing.T) {
	b := boardOf("@..", "...")
	p := NewPiece(2, 1, []string{".."})
	_, err := FindBestMove(b, p, PlayerOne, testConfig(config.StrategyAuto))
	assert.ErrorIs(t, err, ErrEmptyPiece)
}

func TestFindBestMovePrefersCloserPlacement(t *testing.T) {
	b := boardOf(
		"$......",
		".......",
		"..@...@",
	)
	domino := NewPiece(2, 1, []string{"OO"})

	grid, err := Analyze(b, domino, PlayerOne, testConfig(config.StrategyGrid))
	require.NoError(t, err)
	terr, err := Analyze(b, domino, PlayerOne, testConfig(config.StrategyTerritory))
	require.NoError(t, err)

	// (1,2)+(2,2) sit at distance 3+4 from the '$'.
	assert.Equal(t, Move{X: 1, Y: 2}, grid.Move)
	assert.Equal(t, 7, grid.Score)
	assert.Equal(t, grid.Move, terr.Move)
	assert.Equal(t, grid.Score, terr.Score)
	assert.Equal(t, 3, grid.Legal)
	assert.Equal(t, 3, terr.Legal)
	assert.Less(t, terr.Candidates, grid.Candidates)
}

func TestFindBestMoveUnreachablePenalty(t *testing.T) {
	b := boardOf(
		"....",
		".@..",
	)
	p := NewPiece(2, 1, []string{"OO"})
	a, err := Analyze(b, p, PlayerOne, testConfig(config.StrategyGrid))
	require.NoError(t, err)
	assert.Equal(t, Move{X: 0, Y: 1}, a.Move, "first legal origin wins the tie")
	assert.Equal(t, 2*config.DefaultUnreachablePenalty, a.Score)
}

func TestSearchFirstSeenWinsTies(t *testing.T) {
	b := boardOf(
		"..$..",
		".....",
		".@.@.",
	)
	single := NewPiece(1, 1, []string{"O"})
	dist := BuildDistanceMap(b, PlayerTwo)

	res := Search(b, single, PlayerOne, dist, []Pos{{3, 2}, {1, 2}}, config.DefaultUnreachablePenalty)
	require.True(t, res.Found)
	assert.Equal(t, Pos{3, 2}, res.Origin)
	assert.Equal(t, 3, res.Score)

	res = Search(b, single, PlayerOne, dist, []Pos{{1, 2}, {3, 2}}, config.DefaultUnreachablePenalty)
	assert.Equal(t, Pos{1, 2}, res.Origin)
	assert.Equal(t, 2, res.Legal)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		b := randomBoard(r, 3+r.Intn(8), 3+r.Intn(8))
		p := randomPiece(r, 3, 3)
		cfg := testConfig(config.StrategyAuto)
		first, err1 := Analyze(b, p, PlayerTwo, cfg)
		second, err2 := Analyze(b, p, PlayerTwo, cfg)
		assert.Equal(t, err1, err2)
		assert.Equal(t, first, second)
	}
}

// Both generators must agree on the best achievable score and on whether
// any move exists.
func TestStrategiesAgreeOnBestScore(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	checked := 0
	for i := 0; i < 500; i++ {
		b := randomBoard(r, 2+r.Intn(14), 2+r.Intn(14))
		p := randomPiece(r, 4, 4)
		me := PlayerOne
		if i%2 == 1 {
			me = PlayerTwo
		}
		grid, gErr := Analyze(b, p, me, testConfig(config.StrategyGrid))
		terr, tErr := Analyze(b, p, me, testConfig(config.StrategyTerritory))
		require.Equal(t, gErr, tErr, "board %v piece %v", b.Rows, p.Stars)
		require.Equal(t, grid.Found, terr.Found)
		require.Equal(t, grid.Legal, terr.Legal)
		if !grid.Found {
			continue
		}
		checked++
		require.Equal(t, grid.Score, terr.Score, "board %v piece %v", b.Rows, p.Stars)
		require.True(t, IsValidPlacement(b, p, Pos{grid.Move.X, grid.Move.Y}, me))
		require.True(t, IsValidPlacement(b, p, Pos{terr.Move.X, terr.Move.Y}, me))
	}
	assert.Positive(t, checked)
}

func TestAnalyzeReportsStrategy(t *testing.T) {
	b := NewBoard(10, []string{
		"..........",
		"..........",
		"....@.....",
		"..........",
		".........$",
	})
	p := NewPiece(1, 1, []string{"O"})
	a, err := Analyze(b, p, PlayerOne, testConfig(config.StrategyAuto))
	require.NoError(t, err)
	assert.Equal(t, StrategyTerritory, a.Strategy)
	assert.Equal(t, 1, a.Candidates)
	assert.Len(t, a.Distance, 5)
}
