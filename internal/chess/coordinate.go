package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves/internal/errors"
)

// File represents a chess file (column), A through H.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// files is the fixed table Derive indexes into.
var files = [BoardSize]File{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// Files returns the eight files in board order.
func Files() []File {
	return files[:]
}

// String returns the file letter.
func (f File) String() string {
	if f < FileA || f > FileH {
		return "?"
	}
	return string(rune('A' + int(f)))
}

// Coordinate identifies one board cell. Coordinates are values: two
// coordinates are equal iff file and rank are equal, which makes them
// usable as map keys for the board lookup.
type Coordinate struct {
	File File
	Rank int
}

// At is shorthand for building a coordinate.
func At(file File, rank int) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

// String returns the coordinate in "E4" form.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s%d", c.File, c.Rank)
}

// OnBoard reports whether the coordinate names one of the 64 squares.
func (c Coordinate) OnBoard() bool {
	return c.File >= FileA && c.File <= FileH && c.Rank >= FirstRank && c.Rank <= LastRank
}

// Derive returns the coordinate offset from origin by (dFile, dRank).
//
// The file is looked up in the fixed file table and a result outside A..H
// fails with ErrFileOutOfRange. The rank is plain addition: a rank outside
// 1..8 is returned as is and will not be found in the board lookup.
func Derive(origin Coordinate, dFile, dRank int) (Coordinate, error) {
	idx := int(origin.File) + dFile
	if idx < 0 || idx >= len(files) {
		return Coordinate{}, errors.Wrapf(errors.ErrFileOutOfRange,
			"offset (%d,%d) from %s", dFile, dRank, origin)
	}
	return Coordinate{File: files[idx], Rank: origin.Rank + dRank}, nil
}

// ParseCoordinate parses "E4" or "e4" into a coordinate on the board.
func ParseCoordinate(s string) (Coordinate, error) {
	text := strings.TrimSpace(s)
	if len(text) != 2 {
		return Coordinate{}, &errors.ParseError{
			Err:      errors.ErrInvalidCoordinate,
			Input:    s,
			Expected: "file letter and rank digit",
		}
	}

	f := strings.ToUpper(text[:1])[0]
	if f < 'A' || f > 'H' {
		return Coordinate{}, &errors.ParseError{
			Err:      errors.ErrInvalidCoordinate,
			Input:    s,
			Column:   1,
			Expected: "file A-H",
			Got:      string(text[0]),
		}
	}

	r := text[1]
	if r < '1' || r > '8' {
		return Coordinate{}, &errors.ParseError{
			Err:      errors.ErrInvalidCoordinate,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      string(r),
		}
	}

	return Coordinate{File: File(f - 'A'), Rank: int(r - '0')}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on error.
// It is intended for tables of known-good coordinates.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}
