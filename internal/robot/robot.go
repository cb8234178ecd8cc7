package robot

import (
	"errors"
	"io"
	"log"

	"filler-robot/internal/config"
	"filler-robot/internal/game"
	"filler-robot/internal/protocol"
)

// Stats summarises one run.
type Stats struct {
	Turns   int
	NoMoves int
}

type Robot struct {
	cfg   *config.Config
	Stats Stats
}

func New(cfg *config.Config) *Robot {
	return &Robot{cfg: cfg}
}

// Run plays turns from in until the stream ends. Every turn answers with
// exactly one flushed line; "0 0" whenever no placement is possible.
func (rb *Robot) Run(in io.Reader, out io.Writer) error {
	r := protocol.NewReader(in, rb.cfg.Engine.RowPolicy)
	w := protocol.NewWriter(out)

	me, err := r.ReadPlayer()
	if err != nil {
		log.Printf("failed to read player line: %v", err)
		return w.WriteMove(game.NoMove)
	}
	log.Printf("playing as %s", me)

	for {
		b, p, err := r.ReadTurn()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("turn %d: %v, stopping", rb.Stats.Turns+1, err)
			if werr := w.WriteMove(game.NoMove); werr != nil {
				return werr
			}
			break
		}

		mv := rb.Turn(b, p, me)
		if err := w.WriteMove(mv); err != nil {
			return err
		}
	}

	log.Printf("finished after %d turns, %d without a move", rb.Stats.Turns, rb.Stats.NoMoves)
	return nil
}

// Turn decides a single placement, falling back to NoMove. With debug on
// the full analysis is logged.
func (rb *Robot) Turn(b game.Board, p game.Piece, me game.Player) game.Move {
	rb.Stats.Turns++
	if rb.cfg.Debug {
		return rb.traceTurn(b, p, me)
	}
	mv, err := game.FindBestMove(b, p, me, rb.cfg)
	if err != nil {
		rb.Stats.NoMoves++
		return game.NoMove
	}
	return *mv
}

func (rb *Robot) traceTurn(b game.Board, p game.Piece, me game.Player) game.Move {
	a, err := game.Analyze(b, p, me, rb.cfg)
	if err != nil {
		rb.Stats.NoMoves++
		log.Printf("turn %d: %v (board %dx%d, piece %dx%d)", rb.Stats.Turns, err, b.Width, b.Height, p.Width, p.Height)
		return game.NoMove
	}
	log.Printf("turn %d: %s via %s, score %d, %d/%d legal, leader %s",
		rb.Stats.Turns, a.Move, a.Strategy, a.Score, a.Legal, a.Candidates, game.Summarize(b).Leader())
	return a.Move
}
