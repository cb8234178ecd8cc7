package game

// Territory lists the cells owned by p in row-major order.
func Territory(b Board, p Player) []Pos {
	var out []Pos
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if sym, ok := b.At(x, y); ok && p.Owns(sym) {
				out = append(out, Pos{X: x, Y: y})
			}
		}
	}
	return out
}
