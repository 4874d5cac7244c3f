package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/chessmoves/internal/chess"
)

// TextWriter draws the board one rank per line, rank 8 first:
//
//	8 r n b q k b n r
//	7 p p p p p p p p
//	6 _ _ _ _ _ _ _ _
//	...
//	  A B C D E F G H
//
// White pieces are uppercase, Black lowercase, empty squares '_' and
// highlighted empty squares '*'.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes the board diagram.
func (tw *TextWriter) WriteBoard(board *chess.Board, highlight ...chess.Coordinate) error {
	ew := &errWriter{w: tw.w}
	bw := bufio.NewWriter(ew)
	marked := highlightSet(highlight)

	squares := board.Squares()
	for row := 0; row < chess.BoardSize; row++ {
		bw.WriteByte(byte('0' + chess.BoardSize - row))
		bw.WriteByte(' ')
		for _, sq := range squares[row*chess.BoardSize : (row+1)*chess.BoardSize] {
			bw.WriteByte(squareChar(sq, marked[sq.Coordinate()]))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("  ")
	for _, f := range chess.Files() {
		bw.WriteString(f.String())
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return err
	}
	return ew.err
}

func squareChar(sq *chess.Square, marked bool) byte {
	if p := sq.Occupant(); p != nil {
		return p.Letter()
	}
	if marked {
		return '*'
	}
	return '_'
}
