package chess

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessmoves/internal/errors"
)

// Board owns the 64 squares and the pieces standing on them.
type Board struct {
	// The squares in print order: grid[0] is rank 8, grid[7] is rank 1,
	// and each row runs from file A to file H.
	grid [BoardSize][BoardSize]*Square

	// The authoritative coordinate lookup used by move generation.
	squares map[Coordinate]*Square

	// Active pieces per colour, in the order they were placed.
	rosters [2][]*Piece

	// Captured pieces per colour, in capture order.
	captured [2][]*Piece

	byID map[uuid.UUID]*Piece
}

// NewEmptyBoard creates a board with all 64 squares and no pieces.
func NewEmptyBoard() *Board {
	b := &Board{
		squares: make(map[Coordinate]*Square, BoardSize*BoardSize),
		byID:    make(map[uuid.UUID]*Piece),
	}

	for row := 0; row < BoardSize; row++ {
		rank := BoardSize - row // 8 -> 1

		// Rows alternate their starting colour; A8 is light.
		colour := Light
		if row%2 != 0 {
			colour = Dark
		}

		for _, f := range files {
			sq := newSquare(colour, At(f, rank))
			b.grid[row][f] = sq
			b.squares[sq.coord] = sq

			if colour == Light {
				colour = Dark
			} else {
				colour = Light
			}
		}
	}
	return b
}

// NewBoard creates a board set up in the standard starting position.
// Pieces are enrolled in their colour's roster in board order, rank 8 to
// rank 1 and file A to file H.
func NewBoard() *Board {
	b := NewEmptyBoard()
	pieces := StartingPieces()
	for _, sq := range b.Squares() {
		if p, ok := pieces[sq.coord]; ok {
			b.enrol(p, sq)
		}
	}
	return b
}

// Square returns the square at c. The second result is false when c is not
// on the board, including coordinates whose rank lies outside 1..8.
func (b *Board) Square(c Coordinate) (*Square, bool) {
	sq, ok := b.squares[c]
	return sq, ok
}

// PieceAt returns the piece standing on c, or nil.
func (b *Board) PieceAt(c Coordinate) *Piece {
	if sq, ok := b.squares[c]; ok {
		return sq.occupant
	}
	return nil
}

// Squares returns all squares in print order: rank 8 to rank 1, each rank
// from file A to file H.
func (b *Board) Squares() []*Square {
	out := make([]*Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		out = append(out, b.grid[row][:]...)
	}
	return out
}

// Pieces returns the active pieces of the given colour.
func (b *Board) Pieces(colour Colour) []*Piece {
	return append([]*Piece(nil), b.rosters[colour]...)
}

// Captured returns the captured pieces of the given colour.
func (b *Board) Captured(colour Colour) []*Piece {
	return append([]*Piece(nil), b.captured[colour]...)
}

// PieceByID finds a piece placed on this board, active or captured.
func (b *Board) PieceByID(id uuid.UUID) (*Piece, bool) {
	p, ok := b.byID[id]
	return p, ok
}

// SquareOf resolves the square an active piece stands on.
func (b *Board) SquareOf(p *Piece) (*Square, bool) {
	if p == nil || p.status != Active {
		return nil, false
	}
	sq, ok := b.squares[p.at]
	if !ok || sq.occupant != p {
		return nil, false
	}
	return sq, true
}

// Place puts an unplaced piece on an empty square and enrols it in its
// colour's roster.
func (b *Board) Place(p *Piece, c Coordinate) error {
	if p == nil {
		return errors.Wrap(errors.ErrInvalidPlacement, "nil piece")
	}
	if p.status != Unplaced {
		return errors.Wrapf(errors.ErrInvalidPlacement, "%s is already placed", p)
	}
	sq, ok := b.squares[c]
	if !ok {
		return errors.Wrapf(errors.ErrInvalidPlacement, "%s is not on the board", c)
	}
	if sq.Occupied() {
		return errors.Wrapf(errors.ErrInvalidPlacement, "%s is occupied by %s", c, sq.occupant)
	}
	b.enrol(p, sq)
	return nil
}

func (b *Board) enrol(p *Piece, sq *Square) {
	sq.Place(p)
	p.at = sq.coord
	p.status = Active
	b.rosters[p.colour] = append(b.rosters[p.colour], p)
	b.byID[p.id] = p
}

// MovePiece moves the occupant of from onto to.
//
// Moving from an empty square, or onto the same square, does nothing. Any
// piece already on to is captured whatever its colour: it is marked
// Captured, leaves its roster and joins the captured list. No legality check
// is made; callers that care consult the piece's legal destinations first.
func (b *Board) MovePiece(from, to *Square) {
	if from == nil || to == nil || from == to {
		return
	}
	p := from.occupant
	if p == nil {
		return
	}

	if victim := to.occupant; victim != nil {
		b.capture(victim)
	}

	to.Place(p)
	from.Clear()
	p.at = to.coord
	p.moved = true
}

func (b *Board) capture(p *Piece) {
	p.status = Captured
	roster := b.rosters[p.colour]
	for i, q := range roster {
		if q == p {
			b.rosters[p.colour] = append(roster[:i:i], roster[i+1:]...)
			break
		}
	}
	b.captured[p.colour] = append(b.captured[p.colour], p)
}
