package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPlacement(t *testing.T) {
	b := boardOf(
		"......",
		".@@...",
		"...@$.",
		"..ax..",
	)
	domino := NewPiece(2, 1, []string{"OO"})

	cases := []struct {
		name   string
		origin Pos
		me     Player
		want   bool
	}{
		{"one overlap", Pos{X: 0, Y: 1}, PlayerOne, true},
		{"one overlap right side", Pos{X: 2, Y: 1}, PlayerOne, true},
		{"two overlaps", Pos{X: 1, Y: 1}, PlayerOne, false},
		{"no overlap", Pos{X: 3, Y: 0}, PlayerOne, false},
		{"covers opponent", Pos{X: 3, Y: 2}, PlayerOne, false},
		{"covers other symbol", Pos{X: 2, Y: 3}, PlayerOne, false},
		{"opponent view of own cells", Pos{X: 0, Y: 1}, PlayerTwo, false},
		{"player two anchored", Pos{X: 4, Y: 2}, PlayerTwo, true},
		{"off board right", Pos{X: 5, Y: 0}, PlayerOne, false},
		{"off board negative", Pos{X: -1, Y: 1}, PlayerOne, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPlacement(b, domino, tc.origin, tc.me))
		})
	}
}

func TestIsValidPlacementIgnoresPieceBackground(t *testing.T) {
	b := boardOf(
		"$..",
		".@.",
		"...",
	)
	// Only 'O' cells count; the blank corner over '$' is irrelevant.
	cross := NewPiece(3, 3, []string{".O.", "OOO", ".O."})
	assert.True(t, IsValidPlacement(b, cross, Pos{X: 0, Y: 0}, PlayerOne))
	diag := NewPiece(2, 2, []string{".O", "O."})
	assert.True(t, IsValidPlacement(b, diag, Pos{X: 0, Y: 1}, PlayerOne))
	assert.False(t, IsValidPlacement(b, diag, Pos{X: 0, Y: 0}, PlayerOne))
}

func TestLegalMovesKeepsOrder(t *testing.T) {
	b := boardOf(
		"...",
		".@.",
		"...",
	)
	single := NewPiece(1, 1, []string{"O"})
	got := LegalMoves(b, single, PlayerOne, GridCandidates(b, single))
	assert.Equal(t, []Pos{{X: 1, Y: 1}}, got)
}
