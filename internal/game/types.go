package game

import "fmt"

// Board symbols.
const (
	SymEmpty      byte = '.'
	SymOne        byte = '@'
	SymOneRecent  byte = 'a'
	SymTwo        byte = '$'
	SymTwoRecent  byte = 's'
	SymPieceStar  byte = 'O'
	RowLabelWidth      = 4
)

type Player int

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "p1"
	case PlayerTwo:
		return "p2"
	case 0:
		return "none"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(b []byte) error {
	v, err := ParsePlayer(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlayer accepts "p1"/"p2", "1"/"2" or the stable symbol of a side.
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "p1", "1", string(SymOne):
		return PlayerOne, nil
	case "p2", "2", string(SymTwo):
		return PlayerTwo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
}

// Symbols returns the stable and the recent territory symbol of p.
func (p Player) Symbols() [2]byte {
	if p == PlayerOne {
		return [2]byte{SymOne, SymOneRecent}
	}
	return [2]byte{SymTwo, SymTwoRecent}
}

// Owns reports whether sym marks territory of p.
func (p Player) Owns(sym byte) bool {
	s := p.Symbols()
	return sym == s[0] || sym == s[1]
}

func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

type Board struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// NewBoard builds a board from already stripped rows. Height is the number
// of rows actually supplied; the width is clamped to the widest row.
func NewBoard(width int, rows []string) Board {
	widest := 0
	for _, r := range rows {
		widest = max(widest, len(r))
	}
	width = max(0, min(width, widest))
	return Board{
		Width:  width,
		Height: len(rows),
		Rows:   rows,
	}
}

// At is the only way cells are read. Anything outside the declared width,
// the supplied rows or a short row reports ok=false.
func (b Board) At(x, y int) (byte, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height || y >= len(b.Rows) {
		return 0, false
	}
	row := b.Rows[y]
	if x >= len(row) {
		return 0, false
	}
	return row[x], true
}

type Piece struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Stars  []Offset `json:"stars"`
}

// NewPiece collects the 'O' cells of rows, row-major. Characters beyond the
// declared width and rows beyond the declared height are ignored.
func NewPiece(width, height int, rows []string) Piece {
	p := Piece{Width: width, Height: height}
	for dy, row := range rows {
		if dy >= height {
			break
		}
		for dx := 0; dx < len(row) && dx < width; dx++ {
			if row[dx] == SymPieceStar {
				p.Stars = append(p.Stars, Offset{DX: dx, DY: dy})
			}
		}
	}
	return p
}

// FitsIn reports whether the bounding box of p is not larger than b.
func (p Piece) FitsIn(b Board) bool {
	return p.Width <= b.Width && p.Height <= b.Height
}

type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoMove is what gets written when nothing can be placed.
var NoMove = Move{}

func (m Move) String() string {
	return fmt.Sprintf("%d %d", m.X, m.Y)
}
