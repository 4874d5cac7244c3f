package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/config"
	"github.com/lgbarn/chessmoves/internal/engine"
	"github.com/lgbarn/chessmoves/internal/errors"
	"github.com/lgbarn/chessmoves/internal/output"
)

const moveSeparator = "->"

// Console reads moves and commands line by line and prints the board.
type Console struct {
	game   *engine.Game
	cfg    *config.Config
	logger logr.Logger
	out    io.Writer
	board  output.BoardWriter
}

// NewConsole creates a console that prints to cfg.OutputFile.
func NewConsole(game *engine.Game, cfg *config.Config, logger logr.Logger) *Console {
	return &Console{
		game:   game,
		cfg:    cfg,
		logger: logger,
		out:    cfg.OutputFile,
		board:  output.NewBoardWriter(cfg.OutputFile, cfg.Output),
	}
}

// Run prints the board, then handles input lines until EOF or "quit".
// Bad input is reported and skipped; only I/O failures end the loop early.
func (c *Console) Run(in io.Reader) error {
	if err := c.board.WriteBoard(c.game.Board()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := c.handleLine(line, lineNo)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// handleLine executes one input line. The returned error is an output
// failure; problems with the line itself are reported to the user.
func (c *Console) handleLine(line string, lineNo int) (quit bool, err error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "moves":
		if len(fields) != 2 {
			return false, c.report(&errors.ParseError{
				Err:      errors.ErrInvalidMoveText,
				Input:    line,
				Expected: "moves SQUARE",
			}, lineNo)
		}
		from, perr := chess.ParseCoordinate(fields[1])
		if perr != nil {
			return false, c.report(perr, lineNo)
		}
		return false, c.showDestinations(from, lineNo)
	}

	from, to, perr := parseMoveLine(line)
	if perr != nil {
		return false, c.report(perr, lineNo)
	}

	if merr := c.game.Move(from, to); merr != nil {
		var moveErr *errors.MoveError
		if stderrors.As(merr, &moveErr) {
			moveErr.Line = lineNo
		}
		return false, c.report(merr, lineNo)
	}

	if c.cfg.ShowDestinations && c.game.Board().PieceAt(to) != nil {
		return false, c.showDestinations(to, lineNo)
	}
	return false, c.board.WriteBoard(c.game.Board())
}

// showDestinations lists the legal destinations of the piece on from and
// prints the board with them highlighted. With SVG output the list goes to
// the log instead.
func (c *Console) showDestinations(from chess.Coordinate, lineNo int) error {
	dests, err := c.game.Destinations(from)
	if err != nil {
		return c.report(err, lineNo)
	}
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.String()
	}
	list := strings.Join(names, " ")

	// SVG output must stay a sequence of SVG documents.
	if c.cfg.Output.Format == config.SVG {
		c.logger.Info("destinations", "from", from.String(), "to", list)
	} else if _, err := fmt.Fprintf(c.out, "%s: %s\n", from, list); err != nil {
		return err
	}
	return c.board.WriteBoard(c.game.Board(), dests...)
}

// report tells the user about a rejected line and logs it.
func (c *Console) report(err error, lineNo int) error {
	c.logger.V(1).Info("input rejected", "line", lineNo, "error", err.Error())
	_, werr := fmt.Fprintf(c.out, "Error: %v\n", err)
	return werr
}

// parseMoveLine parses "E2->E4" into its two coordinates.
func parseMoveLine(line string) (from, to chess.Coordinate, err error) {
	idx := strings.Index(line, moveSeparator)
	if idx < 0 {
		return from, to, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    line,
			Expected: "FROM->TO",
		}
	}

	from, err = chess.ParseCoordinate(line[:idx])
	if err != nil {
		return from, to, err
	}
	to, err = chess.ParseCoordinate(line[idx+len(moveSeparator):])
	return from, to, err
}

// writeFinalSVG writes the board to cfg.Output.SVGFile, if one is set.
func writeFinalSVG(game *engine.Game, cfg *config.Config) error {
	if cfg.Output.SVGFile == "" {
		return nil
	}
	file, err := os.Create(cfg.Output.SVGFile)
	if err != nil {
		return err
	}
	werr := output.NewSVGWriter(file, cfg.Output.SquareSize).WriteBoard(game.Board())
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
