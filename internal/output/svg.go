package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/config"
)

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	markerStyle   = "fill:#3a7d44;fill-opacity:0.6"
	captureStyle  = "fill:none;stroke:#3a7d44;stroke-width:%d"
	pieceStyleFmt = "font-size:%dpx;text-anchor:middle;dominant-baseline:central;font-family:serif"
)

// pieceGlyphs indexes Unicode chess symbols by colour then kind.
var pieceGlyphs = [2][chess.NumKinds]string{
	chess.White: {chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖", chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙"},
	chess.Black: {chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜", chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟"},
}

// SVGWriter draws the board as an SVG image, rank 8 at the top.
// Highlighted empty squares get a dot, highlighted occupied squares a ring.
type SVGWriter struct {
	w    io.Writer
	size int
}

// NewSVGWriter creates an SVG writer with the given square size in pixels.
// A size outside the configured limits falls back to the default.
func NewSVGWriter(w io.Writer, squareSize int) *SVGWriter {
	if squareSize < config.MinSquareSize || squareSize > config.MaxSquareSize {
		squareSize = config.DefaultSquareSize
	}
	return &SVGWriter{w: w, size: squareSize}
}

// WriteBoard writes the board image.
func (sw *SVGWriter) WriteBoard(board *chess.Board, highlight ...chess.Coordinate) error {
	ew := &errWriter{w: sw.w}
	canvas := svg.New(ew)
	marked := highlightSet(highlight)
	s := sw.size

	canvas.Start(chess.BoardSize*s, chess.BoardSize*s)
	canvas.Title("chessboard")

	for i, sq := range board.Squares() {
		x := (i % chess.BoardSize) * s
		y := (i / chess.BoardSize) * s

		fill := lightFill
		if sq.Colour() == chess.Dark {
			fill = darkFill
		}
		canvas.Rect(x, y, s, s, fill)

		p := sq.Occupant()
		if marked[sq.Coordinate()] {
			if p == nil {
				canvas.Circle(x+s/2, y+s/2, s/6, markerStyle)
			} else {
				w := s / 15
				if w < 1 {
					w = 1
				}
				canvas.Rect(x+w/2, y+w/2, s-w, s-w, fmt.Sprintf(captureStyle, w))
			}
		}
		if p != nil {
			canvas.Text(x+s/2, y+s/2, pieceGlyphs[p.Colour()][p.Kind()], fmt.Sprintf(pieceStyleFmt, s*3/4))
		}
	}

	canvas.End()
	return ew.err
}
