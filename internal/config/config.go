// Package config provides configuration for chessmoves.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmoves/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// StrictMoves makes move execution reject destinations that are not
	// legal for the moving piece. Off by default: the board trusts the caller.
	StrictMoves bool

	// ShowDestinations prints the moved piece's legal destinations after
	// each executed move.
	ShowDestinations bool

	// Verbosity: 0=errors only, 1=moves and captures, 2=everything.
	Verbosity int

	// StartPlacement is the FEN piece placement the board starts from.
	// Empty means the standard starting position.
	StartPlacement string

	// Output settings
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}
