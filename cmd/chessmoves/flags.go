// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmoves/internal/config"
)

var (
	// Move policy
	strictMoves = flag.Bool("strict", false, "Reject moves that are not legal for the moving piece")
	showDests   = flag.Bool("show", false, "Print the moved piece's legal destinations after each move")

	// Starting position
	placement = flag.String("placement", "", "FEN piece placement to start from (default: standard position)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Board format printed after each move: text, svg")
	squareSize   = flag.Int("square", config.DefaultSquareSize, "SVG square size in pixels")
	svgFile      = flag.String("svg", "", "Write the final board as SVG to this file")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbosity = flag.Int("verbose", 1, "Log verbosity: 0=errors, 1=moves and captures, 2=everything")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.StrictMoves = *strictMoves
	cfg.ShowDestinations = *showDests
	cfg.StartPlacement = *placement
	cfg.Verbosity = *verbosity

	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.SquareSize = *squareSize
	cfg.Output.SVGFile = *svgFile

	return cfg.Validate()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reads moves from standard input and prints the board after each one.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines:\n")
	fmt.Fprintf(os.Stderr, "  E2->E4   move the piece on E2 to E4\n")
	fmt.Fprintf(os.Stderr, "  moves E2 list the legal destinations of the piece on E2\n")
	fmt.Fprintf(os.Stderr, "  quit     stop reading input\n")
}
