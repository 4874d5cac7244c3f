package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/engine"
	"github.com/lgbarn/chessmoves/internal/errors"
	"github.com/lgbarn/chessmoves/internal/testutil"
)

func TestLegalDestinations(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		square    string
		want      []string
	}{
		// Rook
		{"lone rook on A1", "8/8/8/8/8/8/8/R7", "A1",
			[]string{"B1", "C1", "D1", "E1", "F1", "G1", "H1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"}},
		{"rook stops at friend and captures enemy", "8/8/3P4/8/3R1p2/8/8/8", "D4",
			[]string{"E4", "F4", "C4", "B4", "A4", "D5", "D3", "D2", "D1"}},
		{"rook boxed in at start", engine.InitialPlacement, "A1", nil},

		// Bishop
		{"lone bishop on D4", "8/8/8/8/3B4/8/8/8", "D4",
			[]string{"E5", "F6", "G7", "H8", "C5", "B6", "A7", "E3", "F2", "G1", "C3", "B2", "A1"}},
		{"bishop captures on the diagonal", "8/8/5p2/8/3B4/2P5/8/8", "D4",
			[]string{"E5", "F6", "C5", "B6", "A7", "E3", "F2", "G1"}},
		{"bishop boxed in at start", engine.InitialPlacement, "C1", nil},

		// Queen
		{"queen boxed in at start", engine.InitialPlacement, "D1", nil},
		{"queen in the corner", "8/8/8/8/8/8/1P6/Q7", "A1",
			[]string{"B1", "C1", "D1", "E1", "F1", "G1", "H1", "A2", "A3", "A4", "A5", "A6", "A7", "A8"}},

		// King
		{"king in the corner", "8/8/8/8/8/8/8/K7", "A1", []string{"B1", "A2", "B2"}},
		{"king among friends and enemies", "8/8/8/3pP3/3K4/8/8/8", "D4",
			[]string{"E4", "C4", "D5", "D3", "C5", "E3", "C3"}},
		{"king boxed in at start", engine.InitialPlacement, "E1", nil},

		// Knight
		{"knight on B1 at start", engine.InitialPlacement, "B1", []string{"C3", "A3"}},
		{"knight on G1 at start", engine.InitialPlacement, "G1", []string{"H3", "F3"}},
		{"knight in the corner", "7N/8/8/8/8/8/8/8", "H8", []string{"F7", "G6"}},
		{"knight captures and skips friends", "8/8/2P1p3/8/3N4/8/8/8", "D4",
			[]string{"F5", "F3", "B5", "B3", "E6", "E2", "C2"}},

		// Pawn
		{"white pawn at start", engine.InitialPlacement, "E2", []string{"E3", "E4"}},
		{"black pawn at start", engine.InitialPlacement, "E7", []string{"E6", "E5"}},
		{"pawn blocked in front", "8/8/8/8/8/4p3/4P3/8", "E2", nil},
		{"pawn blocked two ahead", "8/8/8/8/4p3/8/4P3/8", "E2", []string{"E3"}},
		{"pawn off its home rank", "8/8/8/8/8/4P3/8/8", "E3", []string{"E4"}},
		{"pawn captures both ways", "8/8/8/2pPp3/3P4/8/8/8", "D4", []string{"C5", "E5"}},
		{"pawn does not capture friends", "8/8/8/2P1P3/3P4/8/8/8", "D4", []string{"D5"}},
		{"pawn on the A file", "8/8/8/8/8/1p6/P7/8", "A2", []string{"A3", "A4", "B3"}},
		{"pawn on the last rank", "7P/8/8/8/8/8/8/8", "H8", nil},
		{"black pawn captures downward", "8/8/8/3p4/2P1P3/8/8/8", "D5", []string{"D4", "C4", "E4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.placement)
			p := testutil.MustPieceAt(t, b, tt.square)

			got := engine.LegalDestinations(b, p)
			testutil.AssertCoordinates(t, got, testutil.Coords(tt.want...), "%s from %s", p.Name(), tt.square)
		})
	}
}

func TestLegalDestinations_QueenIsRookPlusBishop(t *testing.T) {
	queen := testutil.MustBoard(t, "8/8/8/8/3Q4/8/8/8")
	rook := testutil.MustBoard(t, "8/8/8/8/3R4/8/8/8")
	bishop := testutil.MustBoard(t, "8/8/8/8/3B4/8/8/8")

	want := append(
		engine.LegalDestinations(rook, testutil.MustPieceAt(t, rook, "D4")),
		engine.LegalDestinations(bishop, testutil.MustPieceAt(t, bishop, "D4"))...,
	)
	got := engine.LegalDestinations(queen, testutil.MustPieceAt(t, queen, "D4"))

	assert.Len(t, got, 27)
	testutil.AssertCoordinates(t, got, want)
}

func TestPawnScenario_FirstMoveConsumed(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.MustPieceAt(t, b, "E2")

	testutil.AssertCoordinates(t, engine.LegalDestinations(b, pawn), testutil.Coords("E3", "E4"))

	from, _ := b.Square(chess.MustParseCoordinate("E2"))
	to, _ := b.Square(chess.MustParseCoordinate("E4"))
	b.MovePiece(from, to)

	testutil.AssertCoordinates(t, engine.LegalDestinations(b, pawn), testutil.Coords("E5"))
}

func TestPawn_NoDoubleAdvanceAfterReturningHome(t *testing.T) {
	b := chess.NewBoard()
	pawn := testutil.MustPieceAt(t, b, "E2")
	e2, _ := b.Square(chess.MustParseCoordinate("E2"))
	e3, _ := b.Square(chess.MustParseCoordinate("E3"))

	b.MovePiece(e2, e3)
	b.MovePiece(e3, e2)

	testutil.AssertCoordinates(t, engine.LegalDestinations(b, pawn), testutil.Coords("E3"))
}

func TestLegalDestinations_CapturedPieceHasNone(t *testing.T) {
	b := chess.NewBoard()
	victim := testutil.MustPieceAt(t, b, "D7")
	d1, _ := b.Square(chess.MustParseCoordinate("D1"))
	d7, _ := b.Square(chess.MustParseCoordinate("D7"))

	b.MovePiece(d1, d7)

	require.Equal(t, chess.Captured, victim.Status())
	assert.Empty(t, engine.LegalDestinations(b, victim))
}

func TestLegalDestinations_NilArguments(t *testing.T) {
	b := chess.NewBoard()
	assert.Nil(t, engine.LegalDestinations(nil, testutil.MustPieceAt(t, b, "E2")))
	assert.Nil(t, engine.LegalDestinations(b, nil))
	assert.Nil(t, engine.LegalDestinations(b, chess.NewPiece(chess.Rook, chess.White)), "unplaced piece")
}

func TestLegalDestinations_DoesNotModifyBoard(t *testing.T) {
	b := testutil.MustBoard(t, "r3k2r/pp1n1ppp/2p5/3pP3/1b1P4/2N2N2/PP3PPP/R2QKB1R")
	before := engine.Placement(b)

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.Pieces(colour) {
			first := engine.LegalDestinations(b, p)
			second := engine.LegalDestinations(b, p)
			testutil.AssertCoordinates(t, second, first, "repeat query for %v", p)
		}
	}

	assert.Equal(t, before, engine.Placement(b))
}

// propertyPlacements are positions the property tests sweep over.
var propertyPlacements = []string{
	engine.InitialPlacement,
	"r3k2r/pp1n1ppp/2p5/3pP3/1b1P4/2N2N2/PP3PPP/R2QKB1R",
	"8/8/8/3q4/8/8/8/N6K",
	"K7/8/8/8/8/8/8/7k",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR",
	"7B/6P1/8/p7/8/8/1p6/R3K2N",
}

func TestProperty_DestinationsOnBoardAndNotFriendly(t *testing.T) {
	for _, placement := range propertyPlacements {
		b := testutil.MustBoard(t, placement)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range b.Pieces(colour) {
				for _, c := range engine.LegalDestinations(b, p) {
					sq, ok := b.Square(c)
					if !assert.True(t, ok, "%s: %v offers off-board %v", placement, p, c) {
						continue
					}
					if occ := sq.Occupant(); occ != nil {
						assert.NotEqual(t, p.Colour(), occ.Colour(), "%s: %v offers friendly %v", placement, p, c)
					}
				}
			}
		}
	}
}

func TestProperty_SlidersStopAtFirstPiece(t *testing.T) {
	for _, placement := range propertyPlacements {
		b := testutil.MustBoard(t, placement)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range b.Pieces(colour) {
				switch p.Kind() {
				case chess.Rook, chess.Bishop, chess.Queen:
				default:
					continue
				}
				for _, c := range engine.LegalDestinations(b, p) {
					for _, between := range squaresBetween(p.Location(), c) {
						assert.Nil(t, b.PieceAt(between),
							"%s: %v reaches %v through occupied %v", placement, p, c, between)
					}
				}
			}
		}
	}
}

func TestProperty_SlidersIncludeEveryEmptySquareUpToBlocker(t *testing.T) {
	b := testutil.MustBoard(t, "8/8/8/3q4/8/8/8/N6K")
	queen := testutil.MustPieceAt(t, b, "D5")
	got := engine.LegalDestinations(b, queen)

	// Every line runs to the edge; the one towards H1 ends in a capture.
	assert.Len(t, got, 27)
	assert.Contains(t, got, chess.MustParseCoordinate("H1"))
	assert.Contains(t, got, chess.MustParseCoordinate("A2"))
	assert.NotContains(t, got, chess.MustParseCoordinate("D5"))
}

func TestProperty_StepperOffsets(t *testing.T) {
	allowed := map[chess.Kind]map[[2]int]bool{
		chess.Knight: offsets([2]int{2, 1}, [2]int{2, -1}, [2]int{-2, 1}, [2]int{-2, -1},
			[2]int{1, 2}, [2]int{1, -2}, [2]int{-1, 2}, [2]int{-1, -2}),
		chess.King: offsets([2]int{1, 0}, [2]int{-1, 0}, [2]int{0, 1}, [2]int{0, -1},
			[2]int{1, 1}, [2]int{-1, 1}, [2]int{1, -1}, [2]int{-1, -1}),
	}

	for _, placement := range propertyPlacements {
		b := testutil.MustBoard(t, placement)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range b.Pieces(colour) {
				set, ok := allowed[p.Kind()]
				if !ok {
					continue
				}
				got := engine.LegalDestinations(b, p)
				assert.LessOrEqual(t, len(got), 8)
				for _, c := range got {
					d := [2]int{int(c.File) - int(p.Location().File), c.Rank - p.Location().Rank}
					assert.True(t, set[d], "%s: %v moved by %v", placement, p, d)
				}
			}
		}
	}
}

func TestProperty_PawnDiagonalOnlyOntoEnemy(t *testing.T) {
	for _, placement := range propertyPlacements {
		b := testutil.MustBoard(t, placement)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, p := range b.Pieces(colour) {
				if p.Kind() != chess.Pawn {
					continue
				}
				for _, c := range engine.LegalDestinations(b, p) {
					if c.File == p.Location().File {
						assert.Nil(t, b.PieceAt(c), "%s: %v advances onto %v", placement, p, c)
						continue
					}
					occ := b.PieceAt(c)
					if assert.NotNil(t, occ, "%s: %v moves diagonally onto empty %v", placement, p, c) {
						assert.NotEqual(t, p.Colour(), occ.Colour())
					}
				}
			}
		}
	}
}

func TestIsLegalDestination(t *testing.T) {
	b := chess.NewBoard()
	knight := testutil.MustPieceAt(t, b, "B1")

	assert.True(t, engine.IsLegalDestination(b, knight, chess.MustParseCoordinate("A3")))
	assert.True(t, engine.IsLegalDestination(b, knight, chess.MustParseCoordinate("C3")))
	assert.False(t, engine.IsLegalDestination(b, knight, chess.MustParseCoordinate("D2")))
	assert.False(t, engine.IsLegalDestination(b, knight, chess.MustParseCoordinate("B3")))
}

func TestDestinationsFrom(t *testing.T) {
	b := chess.NewBoard()

	got, err := engine.DestinationsFrom(b, chess.MustParseCoordinate("G8"))
	require.NoError(t, err)
	testutil.AssertCoordinates(t, got, testutil.Coords("H6", "F6"))

	_, err = engine.DestinationsFrom(b, chess.MustParseCoordinate("E4"))
	assert.ErrorIs(t, err, errors.ErrEmptySquare)

	_, err = engine.DestinationsFrom(b, chess.At(chess.FileE, 9))
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinate)
}

func offsets(ds ...[2]int) map[[2]int]bool {
	m := make(map[[2]int]bool, len(ds))
	for _, d := range ds {
		m[d] = true
	}
	return m
}

// squaresBetween lists the squares strictly between two coordinates on a
// straight or diagonal line.
func squaresBetween(from, to chess.Coordinate) []chess.Coordinate {
	df := sign(int(to.File) - int(from.File))
	dr := sign(to.Rank - from.Rank)
	var out []chess.Coordinate
	c := chess.At(from.File+chess.File(df), from.Rank+dr)
	for c != to {
		out = append(out, c)
		c = chess.At(c.File+chess.File(df), c.Rank+dr)
	}
	return out
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
