package testutil

import (
	"testing"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/engine"
)

// MustBoard builds a board from a FEN piece placement.
// It calls t.Fatal if the placement does not parse.
func MustBoard(t testing.TB, placement string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromPlacement(placement)
	if err != nil {
		t.Fatalf("bad placement %q: %v", placement, err)
	}
	return b
}

// MustPieceAt returns the piece on the named square, e.g. "E2".
// It calls t.Fatal if the square is empty.
func MustPieceAt(t testing.TB, b *chess.Board, square string) *chess.Piece {
	t.Helper()
	c, err := chess.ParseCoordinate(square)
	if err != nil {
		t.Fatalf("bad square %q: %v", square, err)
	}
	p := b.PieceAt(c)
	if p == nil {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

// Coords converts square names to coordinates. It panics on a bad name,
// so it is only for literal test tables.
func Coords(squares ...string) []chess.Coordinate {
	out := make([]chess.Coordinate, 0, len(squares))
	for _, s := range squares {
		out = append(out, chess.MustParseCoordinate(s))
	}
	return out
}
