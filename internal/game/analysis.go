package game

// Summary counts cells per owner. In filler the final score is the
// territory size, so this doubles as the running score.
type Summary struct {
	PlayerOne int `json:"p1"`
	PlayerTwo int `json:"p2"`
	Empty     int `json:"empty"`
	Other     int `json:"other"`
}

func Summarize(b Board) Summary {
	var s Summary
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sym, ok := b.At(x, y)
			if !ok {
				continue
			}
			switch {
			case PlayerOne.Owns(sym):
				s.PlayerOne++
			case PlayerTwo.Owns(sym):
				s.PlayerTwo++
			case sym == SymEmpty:
				s.Empty++
			default:
				s.Other++
			}
		}
	}
	return s
}

// Leader returns the side holding more territory, or 0 on a tie.
func (s Summary) Leader() Player {
	switch {
	case s.PlayerOne > s.PlayerTwo:
		return PlayerOne
	case s.PlayerTwo > s.PlayerOne:
		return PlayerTwo
	}
	return 0
}
