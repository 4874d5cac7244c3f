package chess

import (
	"fmt"

	"github.com/google/uuid"
)

// Status tracks whether a piece is still on the board.
type Status int

const (
	Unplaced Status = iota // Created but not yet put on a board
	Active                 // Standing on a square
	Captured               // Removed from play by a capture
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Unplaced:
		return "Unplaced"
	case Active:
		return "Active"
	case Captured:
		return "Captured"
	}
	return "Unknown"
}

// Piece is a chess piece with a fixed identity and colour.
//
// The piece refers to its square by coordinate rather than by pointer; the
// board resolves it through its lookup. The reference is only meaningful
// while the piece is Active.
type Piece struct {
	id     uuid.UUID
	kind   Kind
	colour Colour
	status Status
	at     Coordinate
	moved  bool
}

// NewPiece creates an unplaced piece.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{
		id:     uuid.New(),
		kind:   kind,
		colour: colour,
	}
}

// ID returns the piece's unique identity.
func (p *Piece) ID() uuid.UUID { return p.id }

// Kind returns the piece kind.
func (p *Piece) Kind() Kind { return p.kind }

// Name returns the display name ("Pawn", "Knight", ...).
func (p *Piece) Name() string { return p.kind.String() }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Status returns whether the piece is unplaced, active or captured.
func (p *Piece) Status() Status { return p.status }

// Location returns the coordinate of the square the piece stands on.
// For a captured piece this is the square it was captured on.
func (p *Piece) Location() Coordinate { return p.at }

// HasMoved reports whether the piece has been moved since it was placed.
func (p *Piece) HasMoved() bool { return p.moved }

// FirstMove reports whether a pawn may still make its two-square advance.
func (p *Piece) FirstMove() bool {
	return p.kind == Pawn && !p.moved
}

// MarkMoved consumes the piece's first move without moving it. Setup code
// uses it for pawns placed away from their home rank.
func (p *Piece) MarkMoved() {
	p.moved = true
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight on G1".
func (p *Piece) String() string {
	switch p.status {
	case Active:
		return fmt.Sprintf("%s %s on %s", p.colour, p.kind, p.at)
	case Captured:
		return fmt.Sprintf("%s %s (captured on %s)", p.colour, p.kind, p.at)
	}
	return fmt.Sprintf("%s %s", p.colour, p.kind)
}
