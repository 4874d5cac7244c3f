package engine

import "github.com/lgbarn/chessmoves/internal/chess"

// pawnMover generates pawn advances and diagonal captures. There is no en
// passant and no promotion.
type pawnMover struct{}

func (pawnMover) destinations(board *chess.Board, piece *chess.Piece) []chess.Coordinate {
	var moves []chess.Coordinate
	origin := piece.Location()
	dir := chess.ColourOffset(piece.Colour())

	// Forward one, then forward two on the first move. The double advance
	// needs the single one to be clear.
	if one, ok := step(origin, offset{0, dir}); ok && classify(board, piece, one) == empty {
		moves = append(moves, one)

		if piece.FirstMove() {
			if two, ok := step(origin, offset{0, 2 * dir}); ok && classify(board, piece, two) == empty {
				moves = append(moves, two)
			}
		}
	}

	// Diagonal captures, left then right. An empty diagonal is never a move.
	for _, dFile := range []int{-1, 1} {
		if diag, ok := step(origin, offset{dFile, dir}); ok && classify(board, piece, diag) == enemy {
			moves = append(moves, diag)
		}
	}

	return moves
}
