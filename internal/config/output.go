package config

import (
	"fmt"

	"github.com/lgbarn/chessmoves/internal/errors"
)

// OutputFormat selects how the board is rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Character diagram, one rank per line
	SVG                      // SVG image
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case SVG:
		return "svg"
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "svg":
		return SVG, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Default and limits for SVG square sizes, in pixels.
const (
	DefaultSquareSize = 45
	MinSquareSize     = 10
	MaxSquareSize     = 200
)

// OutputConfig holds settings related to rendering the board.
type OutputConfig struct {
	// Format is used for the board printed after each move.
	Format OutputFormat

	// SquareSize is the edge length of one square in SVG output.
	SquareSize int

	// SVGFile, when set, receives an SVG diagram of the final board.
	SVGFile string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		SquareSize: DefaultSquareSize,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != SVG {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.SquareSize < MinSquareSize || o.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside %d..%d: %w",
			o.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
