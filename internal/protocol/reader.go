package protocol

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"filler-robot/internal/config"
	"filler-robot/internal/game"
)

const (
	boardHeader = "Anfield"
	pieceHeader = "Piece"
	maxLineSize = 1 << 20
	// rows are appended as they arrive; the header only hints the capacity
	maxPrealloc = 1024
)

// Reader pulls Anfield and Piece blocks off a line stream.
type Reader struct {
	sc        *bufio.Scanner
	rowPolicy string
	line      int
}

func NewReader(r io.Reader, rowPolicy string) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc, rowPolicy: rowPolicy}
}

// ReadLine returns the next line without its terminator, or io.EOF.
func (r *Reader) ReadLine() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	r.line++
	return strings.TrimRight(r.sc.Text(), "\r"), nil
}

// ParsePlayer maps the launcher line ("$$$ exec p1 : [...]") to a side.
// Anything not mentioning p1 is the second player.
func ParsePlayer(line string) game.Player {
	if strings.Contains(line, "p1") {
		return game.PlayerOne
	}
	return game.PlayerTwo
}

func (r *Reader) ReadPlayer() (game.Player, error) {
	line, err := r.ReadLine()
	if err != nil {
		return 0, err
	}
	return ParsePlayer(line), nil
}

// parseHeader reads "<Name> W H:". Unparsable numbers degrade to zero.
func parseHeader(line string) (int, int, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	w, err := strconv.Atoi(parts[1])
	if err != nil || w < 0 {
		w = 0
	}
	h, err := strconv.Atoi(strings.TrimRight(parts[2], ":"))
	if err != nil || h < 0 {
		h = 0
	}
	return w, h, nil
}

// seek skips lines until one starts with prefix.
func (r *Reader) seek(prefix string) (string, error) {
	for {
		line, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(line, prefix) {
			return line, nil
		}
	}
}

// ReadBoard reads the next Anfield block. Each data row carries a 4 char
// label that is dropped. Rows too short to hold the label are logged and,
// depending on the row policy, skipped or replaced by an empty row.
func (r *Reader) ReadBoard() (game.Board, error) {
	header, err := r.seek(boardHeader)
	if err != nil {
		return game.Board{}, err
	}
	w, h, err := parseHeader(header)
	if err != nil {
		log.Printf("line %d: malformed %s header", r.line, boardHeader)
		return game.Board{}, err
	}

	// column ruler
	if _, err := r.ReadLine(); err != nil {
		return game.NewBoard(w, nil), nil
	}

	rows := make([]string, 0, min(h, maxPrealloc))
	var padded []int
	widest := 0
	for i := 0; i < h; i++ {
		line, err := r.ReadLine()
		if err != nil {
			break
		}
		if len(line) < game.RowLabelWidth {
			log.Printf("line %d: malformed board row %d %q", r.line, i, line)
			if r.rowPolicy == config.RowPolicyPad {
				padded = append(padded, len(rows))
				rows = append(rows, "")
			}
			continue
		}
		row := line[game.RowLabelWidth:]
		widest = max(widest, len(row))
		rows = append(rows, row)
	}
	if len(padded) > 0 {
		blank := strings.Repeat(string(game.SymEmpty), min(w, widest))
		for _, i := range padded {
			rows[i] = blank
		}
	}
	return game.NewBoard(w, rows), nil
}

// ReadPiece reads the next Piece block.
func (r *Reader) ReadPiece() (game.Piece, error) {
	header, err := r.seek(pieceHeader)
	if err != nil {
		return game.Piece{}, err
	}
	w, h, err := parseHeader(header)
	if err != nil {
		log.Printf("line %d: malformed %s header", r.line, pieceHeader)
		return game.Piece{}, err
	}
	rows := make([]string, 0, min(h, maxPrealloc))
	for i := 0; i < h; i++ {
		line, err := r.ReadLine()
		if err != nil {
			break
		}
		rows = append(rows, line)
	}
	return game.NewPiece(w, h, rows), nil
}

// ReadTurn reads one board followed by one piece.
func (r *Reader) ReadTurn() (game.Board, game.Piece, error) {
	b, err := r.ReadBoard()
	if err != nil {
		return game.Board{}, game.Piece{}, err
	}
	p, err := r.ReadPiece()
	if err != nil {
		return game.Board{}, game.Piece{}, err
	}
	return b, p, nil
}

// ParseTurn reads a single Anfield + Piece pair out of text.
func ParseTurn(text string, rowPolicy string) (game.Board, game.Piece, error) {
	b, p, err := NewReader(strings.NewReader(text), rowPolicy).ReadTurn()
	if err == io.EOF {
		return b, p, ErrIncompleteTurn
	}
	return b, p, err
}
