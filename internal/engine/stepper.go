package engine

import "github.com/lgbarn/chessmoves/internal/chess"

// stepper makes exactly one step to each of its offsets. The knight's jumps
// are steps too: squares in between are never looked at.
type stepper struct {
	offsets []offset
}

func (s stepper) destinations(board *chess.Board, piece *chess.Piece) []chess.Coordinate {
	var moves []chess.Coordinate
	origin := piece.Location()

	for _, o := range s.offsets {
		next, ok := step(origin, o)
		if !ok {
			continue
		}
		switch classify(board, piece, next) {
		case empty, enemy:
			moves = append(moves, next)
		}
	}
	return moves
}
