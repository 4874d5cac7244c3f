package chess

// Square is one board cell. Its colour and coordinate are fixed at board
// construction; only the occupant changes.
//
// A square does not validate what is placed on it. Keeping the occupant and
// the piece's own location in step is the Board's job.
type Square struct {
	colour   SquareColour
	coord    Coordinate
	occupant *Piece
}

func newSquare(colour SquareColour, coord Coordinate) *Square {
	return &Square{colour: colour, coord: coord}
}

// Colour returns the square colour.
func (s *Square) Colour() SquareColour {
	return s.colour
}

// Coordinate returns the square's coordinate.
func (s *Square) Coordinate() Coordinate {
	return s.coord
}

// Occupant returns the piece on the square, or nil when empty.
func (s *Square) Occupant() *Piece {
	return s.occupant
}

// Occupied reports whether a piece stands on the square.
func (s *Square) Occupied() bool {
	return s.occupant != nil
}

// Place sets the occupant. Passing nil empties the square.
func (s *Square) Place(p *Piece) {
	s.occupant = p
}

// Clear empties the square.
func (s *Square) Clear() {
	s.Place(nil)
}

// String returns the coordinate of the square.
func (s *Square) String() string {
	return s.coord.String()
}
