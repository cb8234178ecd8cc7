package protocol

import (
	"bufio"
	"fmt"
	"io"

	"filler-robot/internal/game"
)

type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteMove emits "x y" and flushes; the referee blocks on it.
func (w *Writer) WriteMove(m game.Move) error {
	if _, err := fmt.Fprintf(w.w, "%d %d\n", m.X, m.Y); err != nil {
		return err
	}
	return w.w.Flush()
}
