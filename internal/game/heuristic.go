package game

// PlacementScore sums the opponent distance under every star of p placed at
// origin. Lower is better. Cells that are unreachable or off the map cost
// penalty each, so such placements always lose to fully reachable ones.
func PlacementScore(p Piece, origin Pos, dist DistanceMap, penalty int) int {
	score := 0
	for _, s := range p.Stars {
		d, ok := dist.At(origin.X+s.DX, origin.Y+s.DY)
		if !ok || d == Unreachable {
			score += penalty
			continue
		}
		score += d
	}
	return score
}
