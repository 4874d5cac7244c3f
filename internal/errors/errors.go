// Package errors provides sentinel errors and error types for chessmoves.
// It defines the failure conditions of the board model and structured error
// types that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrFileOutOfRange indicates a derived file index outside A..H.
	// Rank overflow is never reported this way; such coordinates are
	// simply absent from the board.
	ErrFileOutOfRange = errors.New("file out of range")

	// ErrInvalidCoordinate indicates a coordinate that has no square on the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIllegalMove indicates a move that is not among the piece's legal destinations.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates a query against a square with no piece on it.
	ErrEmptySquare = errors.New("empty square")

	// ErrInvalidPlacement indicates a malformed piece placement or a piece
	// that cannot be put on the requested square.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMoveText indicates console input that is not a move or command.
	ErrInvalidMoveText = errors.New("invalid move text")
)

// MoveError wraps errors with move context: the source and destination
// squares, the piece involved and the input line it came from.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Source square, e.g. "E2"
	To    string // Destination square, e.g. "E4"
	Piece string // Piece description (if known)
	Line  int    // Input line number (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s->%s", e.From, e.To))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an error parsing textual input such as a move line,
// a coordinate or a piece placement.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
