package engine

import "github.com/lgbarn/chessmoves/internal/chess"

// slider moves any distance along its directions until blocked.
type slider struct {
	directions []offset
}

func (s slider) destinations(board *chess.Board, piece *chess.Piece) []chess.Coordinate {
	var moves []chess.Coordinate
	origin := piece.Location()

	for _, dir := range s.directions {
		for next, ok := step(origin, dir); ok; next, ok = step(next, dir) {
			t := classify(board, piece, next)
			if t == empty || t == enemy {
				moves = append(moves, next)
			}
			if t != empty {
				break
			}
		}
	}
	return moves
}
