package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/errors"
)

// InitialPlacement is the piece placement of the standard starting position,
// written as the first field of a FEN string.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewBoardFromPlacement creates a board from a FEN piece-placement field.
// A full FEN string is accepted; fields after the first are ignored.
//
// Pawns placed away from their home rank count as having moved, so they
// are not offered a double advance.
func NewBoardFromPlacement(placement string) (*chess.Board, error) {
	parts := strings.Fields(placement)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidPlacement, Input: placement, Expected: "piece placement"}
	}

	board := chess.NewEmptyBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field, rank 8 first.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.LastRank
	file := 0

	fail := func(col int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidPlacement,
			Input:    positions,
			Column:   col,
			Expected: expected,
			Got:      got,
		}
	}

	col := 0
	for _, c := range positions {
		col++
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fail(col, "8 files in rank "+fmt.Sprint(rank), fmt.Sprint(file))
			}
			rank--
			file = 0
			if rank < chess.FirstRank {
				return fail(col, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fail(col, "at most 8 files", fmt.Sprint(file))
			}
		default:
			if c > unicode.MaxASCII {
				return fail(col, "piece letter", string(c))
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fail(col, "piece letter", string(c))
			}
			if file >= chess.BoardSize {
				return fail(col, "at most 8 files", fmt.Sprint(file+1))
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			piece := chess.NewPiece(kind, colour)
			if kind == chess.Pawn && rank != chess.HomeRank(colour) {
				piece.MarkMoved()
			}
			if err := board.Place(piece, chess.At(chess.File(file), rank)); err != nil {
				return err
			}
			file++
		}
	}

	if rank != chess.FirstRank || file != chess.BoardSize {
		return fail(col, "8 ranks of 8 files", fmt.Sprintf("rank %d file %d", rank, file))
	}
	return nil
}

// Placement returns the board's piece placement as a FEN field.
func Placement(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for _, f := range chess.Files() {
			piece := board.PieceAt(chess.At(f, rank))
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}
