package game

// IsValidPlacement reports whether p placed with its top-left corner at
// origin covers exactly one cell of me and otherwise only empty cells.
// Stars falling off the board reject the placement.
func IsValidPlacement(b Board, p Piece, origin Pos, me Player) bool {
	overlap := 0
	for _, s := range p.Stars {
		sym, ok := b.At(origin.X+s.DX, origin.Y+s.DY)
		if !ok {
			return false
		}
		switch {
		case me.Owns(sym):
			overlap++
			if overlap > 1 {
				return false
			}
		case sym != SymEmpty:
			return false
		}
	}
	return overlap == 1
}

// LegalMoves filters candidates down to the legal ones, keeping order.
func LegalMoves(b Board, p Piece, me Player, candidates []Pos) []Pos {
	var out []Pos
	for _, c := range candidates {
		if IsValidPlacement(b, p, c, me) {
			out = append(out, c)
		}
	}
	return out
}
