package engine

import (
	"github.com/go-logr/logr"

	"github.com/lgbarn/chessmoves/internal/chess"
	"github.com/lgbarn/chessmoves/internal/config"
	"github.com/lgbarn/chessmoves/internal/errors"
)

// Game executes moves on a board under the configured move policy.
type Game struct {
	board  *chess.Board
	cfg    *config.Config
	logger logr.Logger
}

// NewGame creates a game over board. A nil board starts from cfg's start
// placement, or the standard position when none is configured.
func NewGame(board *chess.Board, cfg *config.Config, logger logr.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if board == nil {
		var err error
		board, err = startingBoard(cfg)
		if err != nil {
			return nil, err
		}
	}
	return &Game{board: board, cfg: cfg, logger: logger}, nil
}

func startingBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.StartPlacement == "" {
		return chess.NewBoard(), nil
	}
	return NewBoardFromPlacement(cfg.StartPlacement)
}

// Board returns the game's board.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Move moves the piece on from to to.
//
// An empty source square is a no-op, not an error. With StrictMoves off the
// move is executed without any legality check. With StrictMoves on, a
// destination missing from the piece's legal destinations is rejected with
// ErrIllegalMove and the board is left untouched.
func (g *Game) Move(from, to chess.Coordinate) error {
	fromSq, ok := g.board.Square(from)
	if !ok {
		return &errors.MoveError{Err: errors.ErrInvalidCoordinate, From: from.String(), To: to.String()}
	}
	toSq, ok := g.board.Square(to)
	if !ok {
		return &errors.MoveError{Err: errors.ErrInvalidCoordinate, From: from.String(), To: to.String()}
	}

	piece := fromSq.Occupant()
	if piece == nil {
		g.logger.V(2).Info("no piece to move", "from", from.String())
		return nil
	}

	if g.cfg.StrictMoves && !IsLegalDestination(g.board, piece, to) {
		err := &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			From:  from.String(),
			To:    to.String(),
			Piece: piece.String(),
		}
		g.logger.Error(err, "move rejected", "piece", piece.ID().String())
		return err
	}

	if fromSq == toSq {
		return nil
	}

	victim := toSq.Occupant()
	g.board.MovePiece(fromSq, toSq)

	g.logger.V(1).Info("moved",
		"piece", piece.ID().String(),
		"kind", piece.Name(),
		"colour", piece.Colour().String(),
		"from", from.String(),
		"to", to.String())
	if victim != nil {
		g.logger.V(1).Info("captured",
			"piece", victim.ID().String(),
			"kind", victim.Name(),
			"colour", victim.Colour().String(),
			"on", to.String())
	}
	return nil
}

// Destinations returns the legal destinations of the piece on from.
func (g *Game) Destinations(from chess.Coordinate) ([]chess.Coordinate, error) {
	return DestinationsFrom(g.board, from)
}
