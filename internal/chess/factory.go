package chess

// backRank is the standard piece order on ranks 1 and 8, files A to H.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// HomeRank returns the rank a colour's pawns start on.
func HomeRank(colour Colour) int {
	if colour == White {
		return 2
	}
	return 7
}

// StartingPieces builds the 32 pieces of the standard starting position,
// keyed by the coordinate each starts on.
func StartingPieces() map[Coordinate]*Piece {
	pieces := make(map[Coordinate]*Piece, 4*BoardSize)
	for _, f := range files {
		pieces[At(f, 1)] = NewPiece(backRank[f], White)
		pieces[At(f, HomeRank(White))] = NewPiece(Pawn, White)
		pieces[At(f, HomeRank(Black))] = NewPiece(Pawn, Black)
		pieces[At(f, 8)] = NewPiece(backRank[f], Black)
	}
	return pieces
}
