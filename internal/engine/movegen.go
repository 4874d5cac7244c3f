// Package engine computes legal destinations for pieces and executes moves
// on a chess.Board.
package engine

import (
	"errors"

	"github.com/lgbarn/chessmoves/internal/chess"
	chesserrors "github.com/lgbarn/chessmoves/internal/errors"
)

// offset is a (file, rank) step.
type offset struct {
	dFile, dRank int
}

// mover generates the destinations of one kind of piece.
type mover interface {
	destinations(board *chess.Board, piece *chess.Piece) []chess.Coordinate
}

var (
	straight = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal = []offset{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	allLines = append(append([]offset(nil), straight...), diagonal...)

	knightJumps = []offset{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// movers maps every piece kind to its movement algorithm.
var movers = map[chess.Kind]mover{
	chess.Rook:   slider{directions: straight},
	chess.Bishop: slider{directions: diagonal},
	chess.Queen:  slider{directions: allLines},
	chess.King:   stepper{offsets: allLines},
	chess.Knight: stepper{offsets: knightJumps},
	chess.Pawn:   pawnMover{},
}

// LegalDestinations returns the coordinates the piece could move to given
// the board's current occupancy. It only reads the board.
//
// The order is deterministic: directions in their declared order, and for
// sliding pieces nearest square first. Pieces that are not active on the
// board have no destinations.
func LegalDestinations(board *chess.Board, piece *chess.Piece) []chess.Coordinate {
	if board == nil || piece == nil {
		return nil
	}
	if _, ok := board.SquareOf(piece); !ok {
		return nil
	}
	m, ok := movers[piece.Kind()]
	if !ok {
		return nil
	}
	return m.destinations(board, piece)
}

// IsLegalDestination reports whether target is among the piece's legal destinations.
func IsLegalDestination(board *chess.Board, piece *chess.Piece, target chess.Coordinate) bool {
	for _, c := range LegalDestinations(board, piece) {
		if c == target {
			return true
		}
	}
	return false
}

// DestinationsFrom returns the legal destinations of the piece standing on from.
func DestinationsFrom(board *chess.Board, from chess.Coordinate) ([]chess.Coordinate, error) {
	sq, ok := board.Square(from)
	if !ok {
		return nil, chesserrors.Wrapf(chesserrors.ErrInvalidCoordinate, "%s", from)
	}
	if !sq.Occupied() {
		return nil, chesserrors.Wrapf(chesserrors.ErrEmptySquare, "%s", from)
	}
	return LegalDestinations(board, sq.Occupant()), nil
}

// target classifies a candidate destination for a given piece.
type target int

const (
	offBoard target = iota
	empty
	enemy
	friendly
)

// classify looks a candidate up through the board lookup.
func classify(board *chess.Board, piece *chess.Piece, c chess.Coordinate) target {
	sq, ok := board.Square(c)
	switch {
	case !ok:
		return offBoard
	case !sq.Occupied():
		return empty
	case sq.Occupant().Colour() != piece.Colour():
		return enemy
	default:
		return friendly
	}
}

// step derives the next coordinate in a direction. Leaving the file range
// ends that direction only, so it reports ok=false rather than an error.
func step(from chess.Coordinate, o offset) (chess.Coordinate, bool) {
	next, err := chess.Derive(from, o.dFile, o.dRank)
	if errors.Is(err, chesserrors.ErrFileOutOfRange) {
		return chess.Coordinate{}, false
	}
	return next, err == nil
}
