// Package output renders boards as text diagrams or SVG images.
package output

import (
	"io"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/config"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different formats (text, SVG).
type BoardWriter interface {
	// WriteBoard writes a diagram of the board. Squares listed in
	// highlight are marked, typically a piece's legal destinations.
	WriteBoard(board *chess.Board, highlight ...chess.Coordinate) error
}

// NewBoardWriter returns the writer for the configured output format.
func NewBoardWriter(w io.Writer, cfg *config.OutputConfig) BoardWriter {
	if cfg != nil && cfg.Format == config.SVG {
		return NewSVGWriter(w, cfg.SquareSize)
	}
	return NewTextWriter(w)
}

// errWriter remembers the first write error so rendering code can write
// freely and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

func highlightSet(cs []chess.Coordinate) map[chess.Coordinate]bool {
	if len(cs) == 0 {
		return nil
	}
	set := make(map[chess.Coordinate]bool, len(cs))
	for _, c := range cs {
		set[c] = true
	}
	return set
}
