// chessmoves is a console chessboard: it reads moves such as "E2->E4" and
// prints the board after each one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/lgbarn/chessmoves/internal/config"
	"github.com/lgbarn/chessmoves/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg)

	game, err := engine.NewGame(nil, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up board: %v\n", err)
		os.Exit(1)
	}

	console := NewConsole(game, cfg, logger)
	if err := console.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeFinalSVG(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", cfg.Output.SVGFile, err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostics logger on top of cfg.LogFile.
// It sets the process-wide stdr verbosity, so call it once from main.
func newLogger(cfg *config.Config) logr.Logger {
	stdr.SetVerbosity(cfg.Verbosity)
	return stdr.New(log.New(cfg.LogFile, "chessmoves: ", log.LstdFlags))
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}
